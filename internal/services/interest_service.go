package services

import (
	"fmt"

	"venturelink_backend/internal/models"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

// InterestService owns the InvestorInterest state machine: submission,
// the single pending -> accepted/rejected transition, and the notifications
// each step triggers. Notifications are dispatched only after the primary
// write has succeeded, and their failure never surfaces to the caller.
type InterestService struct {
	interestRepo repositories.InterestRepository
	roundRepo    repositories.RoundRepository
	companyRepo  repositories.CompanyRepository
	investorRepo repositories.InvestorRepository
	dispatcher   NotificationDispatcher
	linkBase     string
}

func NewInterestService(
	interestRepo repositories.InterestRepository,
	roundRepo repositories.RoundRepository,
	companyRepo repositories.CompanyRepository,
	investorRepo repositories.InvestorRepository,
	dispatcher NotificationDispatcher,
	linkBase string,
) *InterestService {
	return &InterestService{
		interestRepo: interestRepo,
		roundRepo:    roundRepo,
		companyRepo:  companyRepo,
		investorRepo: investorRepo,
		dispatcher:   dispatcher,
		linkBase:     linkBase,
	}
}

// SubmitInterest creates a pending interest tying the caller's investor
// profile to a round, then notifies the company owner. The investor identity
// is resolved from the authenticated actor, never from the payload.
func (s *InterestService) SubmitInterest(callerID string, req *dto.SubmitInterestRequest) (*dto.InterestResponse, error) {
	investor, err := s.investorRepo.FindInvestorByOwner(callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvestorNotFound) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return nil, apperrors.PersistenceError(err)
	}

	if req.InvestorID != "" && req.InvestorID != investor.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	round, err := s.roundRepo.FindRoundByID(req.RoundID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if round.Status != models.RoundStatusOpen {
		return nil, apperrors.ErrRoundNotOpen
	}

	company, err := s.companyRepo.FindCompanyByID(round.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if company.OwnerUserID == callerID {
		return nil, apperrors.ErrInvalidOperation("interest", "Cannot declare interest in your own company")
	}

	interest := &models.InvestorInterest{
		RoundID:       round.ID,
		CompanyID:     company.ID,
		InvestorID:    investor.ID,
		UserID:        callerID,
		CompanyUserID: company.OwnerUserID,

		Name:              investor.Name,
		Email:             investor.Email,
		InvestmentRange:   firstNonEmpty(req.InvestmentRange, investor.InvestmentRange),
		Thesis:            firstNonEmpty(req.Thesis, investor.Thesis),
		Goals:             req.Goals,
		Experience:        req.Experience,
		ContactPreference: req.ContactPreference,

		Status: models.InterestStatusPending,
	}

	if err := s.interestRepo.CreateInterest(interest); err != nil {
		if apperrors.Is(err, repositories.ErrInterestAlreadyExists) {
			return nil, apperrors.ErrInterestAlreadyExists
		}
		// Primary write failed: no notification is attempted.
		return nil, apperrors.PersistenceError(err)
	}

	s.dispatcher.Dispatch(dto.NotificationPayload{
		Type:  repositories.NotificationTypeNewInterest,
		Title: "New investment interest",
		Desc:  fmt.Sprintf("%s declared interest in %s", investor.Name, round.Title),
		From:  callerID,
		To:    company.OwnerUserID,
		URL:   s.linkBase + "/interests/" + interest.ID,
	})

	response := s.buildInterestResponse(interest)
	response.Round = &dto.RoundRef{ID: round.ID, Name: round.Title}
	response.CompanyData = &dto.CompanyRef{ID: company.ID, Name: company.Name, Logo: company.LogoURL}
	response.Investor = &dto.InvestorRef{ID: investor.ID, Name: investor.Name, Logo: investor.LogoURL}
	return response, nil
}

// GetInterestDetail joins the interest with its round, company and investor.
// Missing referents (a deleted round leaves its interests orphaned) degrade
// to absent nested objects; the read path never fails on them.
func (s *InterestService) GetInterestDetail(callerID, interestID string) (*dto.InterestResponse, error) {
	interest, err := s.interestRepo.FindInterestByID(interestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if callerID != interest.UserID && callerID != interest.CompanyUserID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	response := s.buildInterestResponse(interest)

	if round, err := s.roundRepo.FindRoundByID(interest.RoundID); err == nil {
		response.Round = &dto.RoundRef{ID: round.ID, Name: round.Title}
	}
	if company, err := s.companyRepo.FindCompanyByID(interest.CompanyID); err == nil {
		response.CompanyData = &dto.CompanyRef{ID: company.ID, Name: company.Name, Logo: company.LogoURL}
	}
	if investor, err := s.investorRepo.FindInvestorByID(interest.InvestorID); err == nil {
		response.Investor = &dto.InvestorRef{ID: investor.ID, Name: investor.Name, Logo: investor.LogoURL}
	}

	return response, nil
}

// TransitionInterest moves a pending interest to accepted or rejected. The
// write is a conditional update keyed on the pending status, so of two
// concurrent transitions at most one wins; the loser gets
// ErrInterestNotPending and no side effects. Terminal states are final.
func (s *InterestService) TransitionInterest(callerID, interestID string, req *dto.TransitionInterestRequest) (*dto.InterestResponse, error) {
	interest, err := s.interestRepo.FindInterestByID(interestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if interest.CompanyUserID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	status := models.InterestStatus(req.Status)
	if !models.TerminalInterestStatus(status) {
		return nil, apperrors.ErrInvalidStatus("interest", "Status must be accepted or rejected")
	}

	err = s.interestRepo.TransitionStatus(interestID, status, req.ResponseMessage, req.TermSheet)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrInterestNotPending):
			return nil, apperrors.ErrInterestNotPending
		case apperrors.Is(err, repositories.ErrInterestNotFound):
			return nil, apperrors.ErrNotFound(err)
		default:
			return nil, apperrors.PersistenceError(err)
		}
	}

	companyName := "The company"
	if company, err := s.companyRepo.FindCompanyByID(interest.CompanyID); err == nil {
		companyName = company.Name
	}

	s.dispatcher.Dispatch(dto.NotificationPayload{
		Type:  repositories.NotificationTypeInterestStatus,
		Title: fmt.Sprintf("Interest %s", status),
		Desc:  fmt.Sprintf("%s has %s your investment interest", companyName, status),
		From:  callerID,
		To:    interest.UserID,
		URL:   s.linkBase + "/interests/" + interest.ID,
	})

	interest.Status = status
	interest.ResponseMessage = req.ResponseMessage
	interest.TermSheet = req.TermSheet
	return s.buildInterestResponse(interest), nil
}

// ListInterestsByRound returns every interest on the round, all statuses,
// newest-first. Company-owner only.
func (s *InterestService) ListInterestsByRound(callerID, roundID string) ([]dto.InterestResponse, error) {
	round, err := s.roundRepo.FindRoundByID(roundID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	company, err := s.companyRepo.FindCompanyByID(round.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if company.OwnerUserID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	interests, err := s.interestRepo.ListInterestsByRound(roundID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.InterestResponse, 0, len(interests))
	for i := range interests {
		responses = append(responses, *s.buildInterestResponse(&interests[i]))
	}
	return responses, nil
}

// ListInterestsByInvestor returns the caller's own submissions.
func (s *InterestService) ListInterestsByInvestor(callerID string) ([]dto.InterestResponse, error) {
	interests, err := s.interestRepo.ListInterestsByUser(callerID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.InterestResponse, 0, len(interests))
	for i := range interests {
		responses = append(responses, *s.buildInterestResponse(&interests[i]))
	}
	return responses, nil
}

func (s *InterestService) buildInterestResponse(interest *models.InvestorInterest) *dto.InterestResponse {
	return &dto.InterestResponse{
		ID:            interest.ID,
		RoundID:       interest.RoundID,
		CompanyID:     interest.CompanyID,
		InvestorID:    interest.InvestorID,
		UserID:        interest.UserID,
		CompanyUserID: interest.CompanyUserID,

		Name:              interest.Name,
		Email:             interest.Email,
		InvestmentRange:   interest.InvestmentRange,
		Thesis:            interest.Thesis,
		Goals:             interest.Goals,
		Experience:        interest.Experience,
		ContactPreference: interest.ContactPreference,

		Status:          string(interest.Status),
		ResponseMessage: interest.ResponseMessage,
		TermSheet:       interest.TermSheet,

		CreatedAt: interest.CreatedAt,
		UpdatedAt: interest.UpdatedAt,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
