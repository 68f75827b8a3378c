package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"venturelink_backend/internal/logger"
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/money"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

// RoundService manages funding rounds: lifecycle CRUD (company-owner only),
// contribution recording, and the new-round fan-out to company followers.
type RoundService struct {
	roundRepo   repositories.RoundRepository
	companyRepo repositories.CompanyRepository
	followRepo  repositories.FollowRepository
	dispatcher  NotificationDispatcher
	linkBase    string
}

func NewRoundService(
	roundRepo repositories.RoundRepository,
	companyRepo repositories.CompanyRepository,
	followRepo repositories.FollowRepository,
	dispatcher NotificationDispatcher,
	linkBase string,
) *RoundService {
	return &RoundService{
		roundRepo:   roundRepo,
		companyRepo: companyRepo,
		followRepo:  followRepo,
		dispatcher:  dispatcher,
		linkBase:    linkBase,
	}
}

// CreateRound creates a funding round for the caller's company and notifies
// every follower of that company. Each follower gets an independent dispatch;
// one failure never blocks the rest, and none of them fail the creation.
func (s *RoundService) CreateRound(callerID string, req *dto.CreateRoundRequest) (*dto.RoundResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(req.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if company.OwnerUserID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	goal, err := money.Parse(req.FundingGoal)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"funding_goal": err.Error()})
	}

	status := models.RoundStatusDraft
	if req.Status != "" {
		status = models.RoundStatus(req.Status)
	}

	round := &models.Round{
		CompanyID:   company.ID,
		Title:       req.Title,
		RoundType:   req.RoundType,
		Status:      status,
		OpenDate:    req.OpenDate,
		ClosingDate: req.ClosingDate,
		Currency:    goal.Currency,
		FundingGoal: goal.Units,
		Investors:   datatypes.JSON("[]"),
	}

	if err := s.roundRepo.CreateRound(round); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	s.notifyFollowers(callerID, company, round)

	return s.buildRoundResponse(round), nil
}

// notifyFollowers fans the new-round alert out to every follower of the
// company. Followers are notified in edge-creation order; each dispatch is
// isolated, so a failure for one recipient leaves the others unaffected.
func (s *RoundService) notifyFollowers(callerID string, company *models.Company, round *models.Round) {
	followerIDs, err := s.followRepo.ListFollowerIDs(company.ID)
	if err != nil {
		// The round exists; the fan-out is best effort like any dispatch.
		logger.WithError(err).Error("Failed to list followers for round fan-out",
			"company_id", company.ID, "round_id", round.ID)
		return
	}

	for _, followerID := range followerIDs {
		s.dispatcher.Dispatch(dto.NotificationPayload{
			Type:  repositories.NotificationTypeNewRound,
			Title: "New funding round",
			Desc:  fmt.Sprintf("%s opened a new round: %s", company.Name, round.Title),
			From:  callerID,
			To:    followerID,
			URL:   s.linkBase + "/rounds/" + round.ID,
		})
	}
}

func (s *RoundService) GetRound(roundID string) (*dto.RoundResponse, error) {
	round, err := s.roundRepo.FindRoundByID(roundID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return s.buildRoundResponse(round), nil
}

func (s *RoundService) ListRoundsByCompany(companyID string) ([]dto.RoundResponse, error) {
	rounds, err := s.roundRepo.ListRoundsByCompany(companyID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return s.buildRoundResponses(rounds), nil
}

func (s *RoundService) ListOpenRounds(limit int) ([]dto.RoundResponse, error) {
	rounds, err := s.roundRepo.ListOpenRounds(limit)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return s.buildRoundResponses(rounds), nil
}

// UpdateRound merges the provided fields into the round. Owner only.
func (s *RoundService) UpdateRound(callerID, roundID string, req *dto.UpdateRoundRequest) (*dto.RoundResponse, error) {
	round, _, err := s.authorizeRound(callerID, roundID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		round.Title = *req.Title
	}
	if req.RoundType != nil {
		round.RoundType = *req.RoundType
	}
	if req.Status != nil {
		status := models.RoundStatus(*req.Status)
		if !models.ValidRoundStatus(status) {
			return nil, apperrors.ErrInvalidStatus("round", "Unknown round status")
		}
		round.Status = status
	}
	if req.OpenDate != nil {
		round.OpenDate = req.OpenDate
	}
	if req.ClosingDate != nil {
		round.ClosingDate = req.ClosingDate
	}
	if req.FundingGoal != nil {
		goal, err := money.Parse(*req.FundingGoal)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"funding_goal": err.Error()})
		}
		if goal.Currency != round.Currency && round.RaisedAmount > 0 {
			// Recorded contributions are denominated in the round currency;
			// it cannot change once money is on the books.
			return nil, apperrors.ErrCurrencyMismatch
		}
		round.Currency = goal.Currency
		round.FundingGoal = goal.Units
	}

	if err := s.roundRepo.UpdateRound(round); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return s.buildRoundResponse(round), nil
}

// DeleteRound removes the round. Interests that reference it are left in
// place; detail reads on them degrade instead of failing.
func (s *RoundService) DeleteRound(callerID, roundID string) error {
	if _, _, err := s.authorizeRound(callerID, roundID); err != nil {
		return err
	}

	if err := s.roundRepo.DeleteRound(roundID); err != nil {
		if apperrors.Is(err, repositories.ErrRoundNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	return nil
}

// AddInvestorToRound records a contribution on the round: appends a
// denormalized entry and accumulates the raised total in minor units. The
// contribution currency must match the round's.
func (s *RoundService) AddInvestorToRound(callerID, roundID string, req *dto.AddRoundInvestorRequest) (*dto.RoundResponse, error) {
	round, _, err := s.authorizeRound(callerID, roundID)
	if err != nil {
		return nil, err
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{"amount": err.Error()})
	}
	if amount.Currency != round.Currency {
		return nil, apperrors.ErrCurrencyMismatch
	}

	entry := models.RoundInvestor{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Amount: amount.Units,
		Date:   time.Now().UTC(),
	}

	updated, err := s.roundRepo.AppendInvestor(roundID, entry)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	return s.buildRoundResponse(updated), nil
}

// authorizeRound loads the round and verifies the caller owns its company.
func (s *RoundService) authorizeRound(callerID, roundID string) (*models.Round, *models.Company, error) {
	round, err := s.roundRepo.FindRoundByID(roundID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoundNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.PersistenceError(err)
	}

	company, err := s.companyRepo.FindCompanyByID(round.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, nil, apperrors.ErrNotFound(err)
		}
		return nil, nil, apperrors.PersistenceError(err)
	}

	if company.OwnerUserID != callerID {
		return nil, nil, apperrors.ErrInsufficientPermissions
	}
	return round, company, nil
}

func (s *RoundService) buildRoundResponses(rounds []models.Round) []dto.RoundResponse {
	responses := make([]dto.RoundResponse, 0, len(rounds))
	for i := range rounds {
		responses = append(responses, *s.buildRoundResponse(&rounds[i]))
	}
	return responses
}

func (s *RoundService) buildRoundResponse(round *models.Round) *dto.RoundResponse {
	views := make([]dto.RoundInvestorView, 0)
	if len(round.Investors) > 0 {
		var entries []models.RoundInvestor
		if err := json.Unmarshal(round.Investors, &entries); err == nil {
			for _, e := range entries {
				views = append(views, dto.RoundInvestorView{
					ID:     e.ID,
					Name:   e.Name,
					Amount: money.Format(round.Currency, e.Amount),
					Date:   e.Date,
				})
			}
		}
	}

	return &dto.RoundResponse{
		ID:           round.ID,
		CompanyID:    round.CompanyID,
		Title:        round.Title,
		RoundType:    round.RoundType,
		Status:       string(round.Status),
		OpenDate:     round.OpenDate,
		ClosingDate:  round.ClosingDate,
		FundingGoal:  money.Format(round.Currency, round.FundingGoal),
		RaisedAmount: money.Format(round.Currency, round.RaisedAmount),
		Investors:    views,
		CreatedAt:    round.CreatedAt,
	}
}
