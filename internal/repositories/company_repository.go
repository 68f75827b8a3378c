package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturelink_backend/internal/models"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists for this account")
)

type CompanyRepository interface {
	CreateCompany(company *models.Company) error
	FindCompanyByID(id string) (*models.Company, error)
	FindCompanyByOwner(ownerUserID string) (*models.Company, error)
	UpdateCompany(company *models.Company) error
	ListCompanies(sector string, limit int) ([]models.Company, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) CreateCompany(company *models.Company) error {
	err := r.db.Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCompanyAlreadyExists
	}
	return err
}

func (r *CompanyRepositoryImpl) FindCompanyByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindCompanyByOwner(ownerUserID string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "owner_user_id = ?", ownerUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) UpdateCompany(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepositoryImpl) ListCompanies(sector string, limit int) ([]models.Company, error) {
	query := r.db.Order("created_at DESC")
	if sector != "" {
		query = query.Where("sector = ?", sector)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var companies []models.Company
	if err := query.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
