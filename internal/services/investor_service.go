package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"venturelink_backend/internal/models"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

// InvestorService manages investor profiles, the source of the snapshot
// fields an interest submission captures.
type InvestorService struct {
	investorRepo repositories.InvestorRepository
}

func NewInvestorService(investorRepo repositories.InvestorRepository) *InvestorService {
	return &InvestorService{investorRepo: investorRepo}
}

func (s *InvestorService) CreateInvestor(callerID string, req *dto.CreateInvestorRequest) (*dto.InvestorResponse, error) {
	sectors, err := encodeSectors(req.SectorInterests)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	investor := &models.Investor{
		OwnerUserID:     callerID,
		Name:            req.Name,
		Email:           req.Email,
		SectorInterests: sectors,
		LogoURL:         req.LogoURL,
		InvestmentRange: req.InvestmentRange,
		Thesis:          req.Thesis,
	}

	if err := s.investorRepo.CreateInvestor(investor); err != nil {
		if apperrors.Is(err, repositories.ErrInvestorAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.PersistenceError(err)
	}

	return buildInvestorResponse(investor), nil
}

func (s *InvestorService) GetInvestor(investorID string) (*dto.InvestorResponse, error) {
	investor, err := s.investorRepo.FindInvestorByID(investorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvestorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return buildInvestorResponse(investor), nil
}

// GetOwnInvestor resolves the caller's own profile.
func (s *InvestorService) GetOwnInvestor(callerID string) (*dto.InvestorResponse, error) {
	investor, err := s.investorRepo.FindInvestorByOwner(callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvestorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return buildInvestorResponse(investor), nil
}

func (s *InvestorService) UpdateInvestor(callerID, investorID string, req *dto.UpdateInvestorRequest) (*dto.InvestorResponse, error) {
	investor, err := s.investorRepo.FindInvestorByID(investorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInvestorNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if investor.OwnerUserID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Name != nil {
		investor.Name = *req.Name
	}
	if req.Email != nil {
		investor.Email = *req.Email
	}
	if req.SectorInterests != nil {
		sectors, err := encodeSectors(req.SectorInterests)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		investor.SectorInterests = sectors
	}
	if req.LogoURL != nil {
		investor.LogoURL = *req.LogoURL
	}
	if req.InvestmentRange != nil {
		investor.InvestmentRange = *req.InvestmentRange
	}
	if req.Thesis != nil {
		investor.Thesis = *req.Thesis
	}

	if err := s.investorRepo.UpdateInvestor(investor); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return buildInvestorResponse(investor), nil
}

func encodeSectors(sectors []string) (datatypes.JSON, error) {
	if sectors == nil {
		sectors = []string{}
	}
	raw, err := json.Marshal(sectors)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func buildInvestorResponse(investor *models.Investor) *dto.InvestorResponse {
	var sectors []string
	if len(investor.SectorInterests) > 0 {
		_ = json.Unmarshal(investor.SectorInterests, &sectors)
	}

	return &dto.InvestorResponse{
		ID:              investor.ID,
		OwnerUserID:     investor.OwnerUserID,
		Name:            investor.Name,
		Email:           investor.Email,
		SectorInterests: sectors,
		LogoURL:         investor.LogoURL,
		InvestmentRange: investor.InvestmentRange,
		Thesis:          investor.Thesis,
		CreatedAt:       investor.CreatedAt,
	}
}
