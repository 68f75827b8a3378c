package services

import (
	"fmt"

	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

// FollowService manages the follower edges between users and companies.
// Toggling is a single atomic insert-or-delete on the edge table, so two
// concurrent toggles on the same pair resolve to exactly one edge state.
type FollowService struct {
	followRepo  repositories.FollowRepository
	companyRepo repositories.CompanyRepository
	dispatcher  NotificationDispatcher
	linkBase    string
}

func NewFollowService(
	followRepo repositories.FollowRepository,
	companyRepo repositories.CompanyRepository,
	dispatcher NotificationDispatcher,
	linkBase string,
) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		companyRepo: companyRepo,
		dispatcher:  dispatcher,
		linkBase:    linkBase,
	}
}

// ToggleFollow flips the caller's follow state for the company and returns
// the resulting state. A fresh follow notifies the company owner; an
// unfollow is silent.
func (s *FollowService) ToggleFollow(callerID, companyID string) (*dto.FollowStateResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if company.OwnerUserID == callerID {
		return nil, apperrors.ErrCannotFollowOwnCompany
	}

	added, err := s.followRepo.AddFollower(companyID, callerID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	following := true
	if !added {
		// Edge already existed: this toggle is an unfollow.
		if _, err := s.followRepo.RemoveFollower(companyID, callerID); err != nil {
			return nil, apperrors.PersistenceError(err)
		}
		following = false
	}

	if added {
		s.dispatcher.Dispatch(dto.NotificationPayload{
			Type:  repositories.NotificationTypeNewFollower,
			Title: "New follower",
			Desc:  fmt.Sprintf("Someone started following %s", company.Name),
			From:  callerID,
			To:    company.OwnerUserID,
			URL:   s.linkBase + "/companies/" + company.ID,
		})
	}

	return s.followState(companyID, following)
}

// IsFollowing reports the caller's follow state and the follower count.
func (s *FollowService) IsFollowing(callerID, companyID string) (*dto.FollowStateResponse, error) {
	if _, err := s.companyRepo.FindCompanyByID(companyID); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	following, err := s.followRepo.IsFollowing(companyID, callerID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return s.followState(companyID, following)
}

// ListFollowedCompanies returns the companies the caller follows.
func (s *FollowService) ListFollowedCompanies(callerID string) ([]dto.CompanyResponse, error) {
	ids, err := s.followRepo.ListFollowedCompanyIDs(callerID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	companies := make([]dto.CompanyResponse, 0, len(ids))
	for _, id := range ids {
		company, err := s.companyRepo.FindCompanyByID(id)
		if err != nil {
			// Deleted companies drop out of the list silently.
			continue
		}
		response := buildCompanyResponse(company)
		if count, err := s.followRepo.CountFollowers(id); err == nil {
			response.Followers = count
		}
		companies = append(companies, response)
	}
	return companies, nil
}

func (s *FollowService) followState(companyID string, following bool) (*dto.FollowStateResponse, error) {
	count, err := s.followRepo.CountFollowers(companyID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return &dto.FollowStateResponse{
		CompanyID: companyID,
		Following: following,
		Followers: count,
	}, nil
}
