package services

import (
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

// CompanyService manages company profiles. One profile per account; the
// owner is always the authenticated actor, never taken from the payload.
type CompanyService struct {
	companyRepo repositories.CompanyRepository
	followRepo  repositories.FollowRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository, followRepo repositories.FollowRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, followRepo: followRepo}
}

func (s *CompanyService) CreateCompany(callerID string, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &models.Company{
		OwnerUserID: callerID,
		Name:        req.Name,
		Sector:      req.Sector,
		Stage:       req.Stage,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	}

	if err := s.companyRepo.CreateCompany(company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.PersistenceError(err)
	}

	response := buildCompanyResponse(company)
	return &response, nil
}

func (s *CompanyService) GetCompany(companyID string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return s.withFollowers(company)
}

// GetOwnCompany resolves the caller's own profile.
func (s *CompanyService) GetOwnCompany(callerID string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindCompanyByOwner(callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return s.withFollowers(company)
}

func (s *CompanyService) UpdateCompany(callerID, companyID string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindCompanyByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if company.OwnerUserID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Sector != nil {
		company.Sector = *req.Sector
	}
	if req.Stage != nil {
		company.Stage = *req.Stage
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}

	if err := s.companyRepo.UpdateCompany(company); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return s.withFollowers(company)
}

func (s *CompanyService) ListCompanies(sector string, limit int) ([]dto.CompanyResponse, error) {
	companies, err := s.companyRepo.ListCompanies(sector, limit)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, buildCompanyResponse(&companies[i]))
	}
	return responses, nil
}

func (s *CompanyService) withFollowers(company *models.Company) (*dto.CompanyResponse, error) {
	response := buildCompanyResponse(company)
	count, err := s.followRepo.CountFollowers(company.ID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	response.Followers = count
	return &response, nil
}

func buildCompanyResponse(company *models.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          company.ID,
		OwnerUserID: company.OwnerUserID,
		Name:        company.Name,
		Sector:      company.Sector,
		Stage:       company.Stage,
		Description: company.Description,
		LogoURL:     company.LogoURL,
		CreatedAt:   company.CreatedAt,
	}
}
