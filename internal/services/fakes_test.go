package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"

	"venturelink_backend/internal/models"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
)

func decodeEntries(raw datatypes.JSON) ([]models.RoundInvestor, error) {
	var entries []models.RoundInvestor
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func encodeEntries(entries []models.RoundInvestor) (datatypes.JSON, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// In-memory repository fakes. They reproduce the repository contracts the
// services rely on: sentinel errors, conditional transition semantics,
// uniqueness of the (round, investor) pair, and newest-first listings.

type idSeq struct {
	n int
}

func (s *idSeq) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

func (s *idSeq) stamp() time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, s.n*1000, time.UTC)
}

// --- Company ---

type fakeCompanyRepo struct {
	seq       idSeq
	companies map[string]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *fakeCompanyRepo) CreateCompany(company *models.Company) error {
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

func (r *fakeCompanyRepo) FindCompanyByID(id string) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	copied := *company
	return &copied, nil
}

func (r *fakeCompanyRepo) FindCompanyByOwner(ownerUserID string) (*models.Company, error) {
	for _, c := range r.companies {
		if c.OwnerUserID == ownerUserID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) UpdateCompany(company *models.Company) error {
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *fakeCompanyRepo) ListCompanies(sector string, limit int) ([]models.Company, error) {
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

// --- Investor ---

type fakeInvestorRepo struct {
	seq       idSeq
	investors map[string]*models.Investor
}

func newFakeInvestorRepo() *fakeInvestorRepo {
	return &fakeInvestorRepo{investors: make(map[string]*models.Investor)}
}

func (r *fakeInvestorRepo) CreateInvestor(investor *models.Investor) error {
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

func (r *fakeInvestorRepo) FindInvestorByID(id string) (*models.Investor, error) {
	investor, ok := r.investors[id]
	if !ok {
		return nil, repositories.ErrInvestorNotFound
	}
	copied := *investor
	return &copied, nil
}

func (r *fakeInvestorRepo) FindInvestorByOwner(ownerUserID string) (*models.Investor, error) {
	for _, i := range r.investors {
		if i.OwnerUserID == ownerUserID {
			copied := *i
			return &copied, nil
		}
	}
	return nil, repositories.ErrInvestorNotFound
}

func (r *fakeInvestorRepo) UpdateInvestor(investor *models.Investor) error {
	stored := *investor
	r.investors[investor.ID] = &stored
	return nil
}

// --- Round ---

type fakeRoundRepo struct {
	seq    idSeq
	rounds map[string]*models.Round
}

func newFakeRoundRepo() *fakeRoundRepo {
	return &fakeRoundRepo{rounds: make(map[string]*models.Round)}
}

func (r *fakeRoundRepo) CreateRound(round *models.Round) error {
	round.ID = r.seq.next("round")
	round.CreatedAt = r.seq.stamp()
	stored := *round
	r.rounds[round.ID] = &stored
	return nil
}

func (r *fakeRoundRepo) FindRoundByID(id string) (*models.Round, error) {
	round, ok := r.rounds[id]
	if !ok {
		return nil, repositories.ErrRoundNotFound
	}
	copied := *round
	return &copied, nil
}

func (r *fakeRoundRepo) UpdateRound(round *models.Round) error {
	if _, ok := r.rounds[round.ID]; !ok {
		return repositories.ErrRoundNotFound
	}
	stored := *round
	r.rounds[round.ID] = &stored
	return nil
}

func (r *fakeRoundRepo) DeleteRound(id string) error {
	if _, ok := r.rounds[id]; !ok {
		return repositories.ErrRoundNotFound
	}
	delete(r.rounds, id)
	return nil
}

func (r *fakeRoundRepo) ListRoundsByCompany(companyID string) ([]models.Round, error) {
	var out []models.Round
	for _, round := range r.rounds {
		if round.CompanyID == companyID {
			out = append(out, *round)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRoundRepo) ListOpenRounds(limit int) ([]models.Round, error) {
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

func (r *fakeRoundRepo) AppendInvestor(roundID string, entry models.RoundInvestor) (*models.Round, error) {
	round, ok := r.rounds[roundID]
	if !ok {
		return nil, repositories.ErrRoundNotFound
	}

	entries, err := decodeEntries(round.Investors)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	encoded, err := encodeEntries(entries)
	if err != nil {
		return nil, err
	}

	round.Investors = encoded
	round.RaisedAmount += entry.Amount
	copied := *round
	return &copied, nil
}

// --- Interest ---

type fakeInterestRepo struct {
	seq       idSeq
	interests map[string]*models.InvestorInterest
	createErr error
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: make(map[string]*models.InvestorInterest)}
}

func (r *fakeInterestRepo) CreateInterest(interest *models.InvestorInterest) error {
	if r.createErr != nil {
		return r.createErr
	}
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

func (r *fakeInterestRepo) FindInterestByID(id string) (*models.InvestorInterest, error) {
	interest, ok := r.interests[id]
	if !ok {
		return nil, repositories.ErrInterestNotFound
	}
	copied := *interest
	return &copied, nil
}

func (r *fakeInterestRepo) ListInterestsByRound(roundID string) ([]models.InvestorInterest, error) {
	var out []models.InvestorInterest
	for _, interest := range r.interests {
		if interest.RoundID == roundID {
			out = append(out, *interest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeInterestRepo) ListInterestsByUser(userID string) ([]models.InvestorInterest, error) {
	var out []models.InvestorInterest
	for _, interest := range r.interests {
		if interest.UserID == userID {
			out = append(out, *interest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeInterestRepo) TransitionStatus(id string, status models.InterestStatus, responseMessage, termSheet string) error {
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

// --- Follow ---

type fakeFollowRepo struct {
	// edge order matters: fan-out notifies in insertion order
	edges []models.CompanyFollower
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{}
}

func (r *fakeFollowRepo) AddFollower(companyID, userID string) (bool, error) {
	for _, e := range r.edges {
		if e.CompanyID == companyID && e.UserID == userID {
			return false, nil
		}
	}
	r.edges = append(r.edges, models.CompanyFollower{CompanyID: companyID, UserID: userID})
	return true, nil
}

func (r *fakeFollowRepo) RemoveFollower(companyID, userID string) (bool, error) {
	for i, e := range r.edges {
		if e.CompanyID == companyID && e.UserID == userID {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFollowRepo) IsFollowing(companyID, userID string) (bool, error) {
	for _, e := range r.edges {
		if e.CompanyID == companyID && e.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFollowRepo) ListFollowerIDs(companyID string) ([]string, error) {
	var ids []string
	for _, e := range r.edges {
		if e.CompanyID == companyID {
			ids = append(ids, e.UserID)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) ListFollowedCompanyIDs(userID string) ([]string, error) {
	var ids []string
	for _, e := range r.edges {
		if e.UserID == userID {
			ids = append(ids, e.CompanyID)
		}
	}
	return ids, nil
}

func (r *fakeFollowRepo) CountFollowers(companyID string) (int64, error) {
	var count int64
	for _, e := range r.edges {
		if e.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

// --- Notification ---

type fakeNotificationRepo struct {
	seq           idSeq
	notifications map[string]*models.Notification
	// failFor simulates a write failure for specific recipients
	failFor map[string]error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: make(map[string]*models.Notification),
		failFor:       make(map[string]error),
	}
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	if err, ok := r.failFor[notification.ToID]; ok {
		return err
	}
	notification.ID = r.seq.next("notification")
	notification.CreatedAt = r.seq.stamp()
	stored := *notification
	r.notifications[notification.ID] = &stored
	return nil
}

func (r *fakeNotificationRepo) FindNotificationByID(id string) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, repositories.ErrNotificationNotFound
	}
	copied := *notification
	return &copied, nil
}

func (r *fakeNotificationRepo) ListForRecipient(userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.ToID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNotificationRepo) CountForRecipient(userID string) (int64, error) {
	list, _ := r.ListForRecipient(userID)
	return int64(len(list)), nil
}

func (r *fakeNotificationRepo) DeleteNotification(id string) error {
	if _, ok := r.notifications[id]; !ok {
		return repositories.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepo) DeleteForRecipient(userID string) error {
	for id, n := range r.notifications {
		if n.ToID == userID {
			delete(r.notifications, id)
		}
	}
	return nil
}

// --- Dispatcher ---

// recordingDispatcher captures dispatched payloads for assertions.
type recordingDispatcher struct {
	payloads []dto.NotificationPayload
}

func (d *recordingDispatcher) Dispatch(payload dto.NotificationPayload) {
	d.payloads = append(d.payloads, payload)
}

func (d *recordingDispatcher) sentTo(userID string) []dto.NotificationPayload {
	var out []dto.NotificationPayload
	for _, p := range d.payloads {
		if p.To == userID {
			out = append(out, p)
		}
	}
	return out
}
