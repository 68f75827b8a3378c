package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturelink_backend/internal/models"
)

var (
	ErrInvestorNotFound      = errors.New("investor not found")
	ErrInvestorAlreadyExists = errors.New("investor already exists for this account")
)

type InvestorRepository interface {
	CreateInvestor(investor *models.Investor) error
	FindInvestorByID(id string) (*models.Investor, error)
	FindInvestorByOwner(ownerUserID string) (*models.Investor, error)
	UpdateInvestor(investor *models.Investor) error
}

type InvestorRepositoryImpl struct {
	db *gorm.DB
}

func NewInvestorRepository(db *gorm.DB) InvestorRepository {
	return &InvestorRepositoryImpl{db: db}
}

func (r *InvestorRepositoryImpl) CreateInvestor(investor *models.Investor) error {
	err := r.db.Create(investor).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrInvestorAlreadyExists
	}
	return err
}

func (r *InvestorRepositoryImpl) FindInvestorByID(id string) (*models.Investor, error) {
	var investor models.Investor
	err := r.db.First(&investor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvestorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &investor, nil
}

func (r *InvestorRepositoryImpl) FindInvestorByOwner(ownerUserID string) (*models.Investor, error) {
	var investor models.Investor
	err := r.db.First(&investor, "owner_user_id = ?", ownerUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvestorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &investor, nil
}

func (r *InvestorRepositoryImpl) UpdateInvestor(investor *models.Investor) error {
	return r.db.Save(investor).Error
}
