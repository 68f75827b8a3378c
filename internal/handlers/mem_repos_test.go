package handlers_test

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"

	"venturelink_backend/internal/models"
	"venturelink_backend/internal/repositories"
)

// Minimal in-memory repository implementations backing the HTTP tests.

type memSeq struct{ n int }

func (s *memSeq) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

func (s *memSeq) stamp() time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, s.n*1000, time.UTC)
}

type memCompanyRepo struct {
	seq       memSeq
	companies map[string]*models.Company
}

func newMemCompanyRepo() repositories.CompanyRepository {
	return &memCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *memCompanyRepo) CreateCompany(company *models.Company) error {
	for _, c := range r.companies {
		if c.OwnerUserID == company.OwnerUserID {
			return repositories.ErrCompanyAlreadyExists
		}
	}
	company.ID = r.seq.next("company")
	company.CreatedAt = r.seq.stamp()
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *memCompanyRepo) FindCompanyByID(id string) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	copied := *company
	return &copied, nil
}

func (r *memCompanyRepo) FindCompanyByOwner(ownerUserID string) (*models.Company, error) {
	for _, c := range r.companies {
		if c.OwnerUserID == ownerUserID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *memCompanyRepo) UpdateCompany(company *models.Company) error {
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *memCompanyRepo) ListCompanies(sector string, limit int) ([]models.Company, error) {
	var out []models.Company
	for _, c := range r.companies {
		if sector == "" || c.Sector == sector {
			out = append(out, *c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memInvestorRepo struct {
	seq       memSeq
	investors map[string]*models.Investor
}

func newMemInvestorRepo() repositories.InvestorRepository {
	return &memInvestorRepo{investors: make(map[string]*models.Investor)}
}

func (r *memInvestorRepo) CreateInvestor(investor *models.Investor) error {
	for _, i := range r.investors {
		if i.OwnerUserID == investor.OwnerUserID {
			return repositories.ErrInvestorAlreadyExists
		}
	}
	investor.ID = r.seq.next("investor")
	investor.CreatedAt = r.seq.stamp()
	stored := *investor
	r.investors[investor.ID] = &stored
	return nil
}

func (r *memInvestorRepo) FindInvestorByID(id string) (*models.Investor, error) {
	investor, ok := r.investors[id]
	if !ok {
		return nil, repositories.ErrInvestorNotFound
	}
	copied := *investor
	return &copied, nil
}

func (r *memInvestorRepo) FindInvestorByOwner(ownerUserID string) (*models.Investor, error) {
	for _, i := range r.investors {
		if i.OwnerUserID == ownerUserID {
			copied := *i
			return &copied, nil
		}
	}
	return nil, repositories.ErrInvestorNotFound
}

func (r *memInvestorRepo) UpdateInvestor(investor *models.Investor) error {
	stored := *investor
	r.investors[investor.ID] = &stored
	return nil
}

type memRoundRepo struct {
	seq    memSeq
	rounds map[string]*models.Round
}

func newMemRoundRepo() repositories.RoundRepository {
	return &memRoundRepo{rounds: make(map[string]*models.Round)}
}

func (r *memRoundRepo) CreateRound(round *models.Round) error {
	round.ID = r.seq.next("round")
	round.CreatedAt = r.seq.stamp()
	stored := *round
	r.rounds[round.ID] = &stored
	return nil
}

func (r *memRoundRepo) FindRoundByID(id string) (*models.Round, error) {
	round, ok := r.rounds[id]
	if !ok {
		return nil, repositories.ErrRoundNotFound
	}
	copied := *round
	return &copied, nil
}

func (r *memRoundRepo) UpdateRound(round *models.Round) error {
	if _, ok := r.rounds[round.ID]; !ok {
		return repositories.ErrRoundNotFound
	}
	stored := *round
	r.rounds[round.ID] = &stored
	return nil
}

func (r *memRoundRepo) DeleteRound(id string) error {
	if _, ok := r.rounds[id]; !ok {
		return repositories.ErrRoundNotFound
	}
	delete(r.rounds, id)
	return nil
}

func (r *memRoundRepo) ListRoundsByCompany(companyID string) ([]models.Round, error) {
	var out []models.Round
	for _, round := range r.rounds {
		if round.CompanyID == companyID {
			out = append(out, *round)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRoundRepo) ListOpenRounds(limit int) ([]models.Round, error) {
	var out []models.Round
	for _, round := range r.rounds {
		if round.Status == models.RoundStatusOpen {
			out = append(out, *round)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRoundRepo) AppendInvestor(roundID string, entry models.RoundInvestor) (*models.Round, error) {
	round, ok := r.rounds[roundID]
	if !ok {
		return nil, repositories.ErrRoundNotFound
	}

	var entries []models.RoundInvestor
	if len(round.Investors) > 0 {
		if err := json.Unmarshal(round.Investors, &entries); err != nil {
			return nil, err
		}
	}
	entries = append(entries, entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	round.Investors = datatypes.JSON(raw)
	round.RaisedAmount += entry.Amount
	copied := *round
	return &copied, nil
}

type memInterestRepo struct {
	seq       memSeq
	interests map[string]*models.InvestorInterest
}

func newMemInterestRepo() repositories.InterestRepository {
	return &memInterestRepo{interests: make(map[string]*models.InvestorInterest)}
}

func (r *memInterestRepo) CreateInterest(interest *models.InvestorInterest) error {
	for _, existing := range r.interests {
		if existing.RoundID == interest.RoundID && existing.InvestorID == interest.InvestorID {
			return repositories.ErrInterestAlreadyExists
		}
	}
	interest.ID = r.seq.next("interest")
	interest.CreatedAt = r.seq.stamp()
	interest.UpdatedAt = interest.CreatedAt
	if interest.Status == "" {
		interest.Status = models.InterestStatusPending
	}
	stored := *interest
	r.interests[interest.ID] = &stored
	return nil
}

func (r *memInterestRepo) FindInterestByID(id string) (*models.InvestorInterest, error) {
	interest, ok := r.interests[id]
	if !ok {
		return nil, repositories.ErrInterestNotFound
	}
	copied := *interest
	return &copied, nil
}

func (r *memInterestRepo) ListInterestsByRound(roundID string) ([]models.InvestorInterest, error) {
	var out []models.InvestorInterest
	for _, interest := range r.interests {
		if interest.RoundID == roundID {
			out = append(out, *interest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memInterestRepo) ListInterestsByUser(userID string) ([]models.InvestorInterest, error) {
	var out []models.InvestorInterest
	for _, interest := range r.interests {
		if interest.UserID == userID {
			out = append(out, *interest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memInterestRepo) TransitionStatus(id string, status models.InterestStatus, responseMessage, termSheet string) error {
	interest, ok := r.interests[id]
	if !ok {
		return repositories.ErrInterestNotFound
	}
	if interest.Status != models.InterestStatusPending {
		return repositories.ErrInterestNotPending
	}
	interest.Status = status
	interest.ResponseMessage = responseMessage
	interest.TermSheet = termSheet
	return nil
}

type memFollowRepo struct {
	edges []models.CompanyFollower
}

func newMemFollowRepo() repositories.FollowRepository {
	return &memFollowRepo{}
}

func (r *memFollowRepo) AddFollower(companyID, userID string) (bool, error) {
	for _, e := range r.edges {
		if e.CompanyID == companyID && e.UserID == userID {
			return false, nil
		}
	}
	r.edges = append(r.edges, models.CompanyFollower{CompanyID: companyID, UserID: userID})
	return true, nil
}

func (r *memFollowRepo) RemoveFollower(companyID, userID string) (bool, error) {
	for i, e := range r.edges {
		if e.CompanyID == companyID && e.UserID == userID {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memFollowRepo) IsFollowing(companyID, userID string) (bool, error) {
	for _, e := range r.edges {
		if e.CompanyID == companyID && e.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFollowRepo) ListFollowerIDs(companyID string) ([]string, error) {
	var ids []string
	for _, e := range r.edges {
		if e.CompanyID == companyID {
			ids = append(ids, e.UserID)
		}
	}
	return ids, nil
}

func (r *memFollowRepo) ListFollowedCompanyIDs(userID string) ([]string, error) {
	var ids []string
	for _, e := range r.edges {
		if e.UserID == userID {
			ids = append(ids, e.CompanyID)
		}
	}
	return ids, nil
}

func (r *memFollowRepo) CountFollowers(companyID string) (int64, error) {
	var count int64
	for _, e := range r.edges {
		if e.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

type memNotificationRepo struct {
	seq           memSeq
	notifications map[string]*models.Notification
}

func newMemNotificationRepo() repositories.NotificationRepository {
	return &memNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (r *memNotificationRepo) CreateNotification(notification *models.Notification) error {
	notification.ID = r.seq.next("notification")
	notification.CreatedAt = r.seq.stamp()
	stored := *notification
	r.notifications[notification.ID] = &stored
	return nil
}

func (r *memNotificationRepo) FindNotificationByID(id string) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, repositories.ErrNotificationNotFound
	}
	copied := *notification
	return &copied, nil
}

func (r *memNotificationRepo) ListForRecipient(userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.ToID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memNotificationRepo) CountForRecipient(userID string) (int64, error) {
	list, _ := r.ListForRecipient(userID)
	return int64(len(list)), nil
}

func (r *memNotificationRepo) DeleteNotification(id string) error {
	if _, ok := r.notifications[id]; !ok {
		return repositories.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

func (r *memNotificationRepo) DeleteForRecipient(userID string) error {
	for id, n := range r.notifications {
		if n.ToID == userID {
			delete(r.notifications, id)
		}
	}
	return nil
}
