package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturelink_backend/internal/models"
)

var (
	ErrInterestNotFound      = errors.New("interest not found")
	ErrInterestAlreadyExists = errors.New("interest already exists for this round")
	ErrInterestNotPending    = errors.New("interest is not pending")
)

type InterestRepository interface {
	CreateInterest(interest *models.InvestorInterest) error
	FindInterestByID(id string) (*models.InvestorInterest, error)
	ListInterestsByRound(roundID string) ([]models.InvestorInterest, error)
	ListInterestsByUser(userID string) ([]models.InvestorInterest, error)
	// TransitionStatus performs the conditional write
	// "set status/response/term sheet where id = ? and status = 'pending'".
	// Zero rows affected means either the interest does not exist
	// (ErrInterestNotFound) or it has already been responded to
	// (ErrInterestNotPending). At most one of two concurrent transitions can
	// win.
	TransitionStatus(id string, status models.InterestStatus, responseMessage, termSheet string) error
}

type InterestRepositoryImpl struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &InterestRepositoryImpl{db: db}
}

func (r *InterestRepositoryImpl) CreateInterest(interest *models.InvestorInterest) error {
	err := r.db.Create(interest).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrInterestAlreadyExists
	}
	return err
}

func (r *InterestRepositoryImpl) FindInterestByID(id string) (*models.InvestorInterest, error) {
	var interest models.InvestorInterest
	err := r.db.First(&interest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

// Newest-first: there is no ordering requirement on this listing, fixed order
// keeps it deterministic for clients.
func (r *InterestRepositoryImpl) ListInterestsByRound(roundID string) ([]models.InvestorInterest, error) {
	var interests []models.InvestorInterest
	err := r.db.Where("round_id = ?", roundID).
		Order("created_at DESC").
		Find(&interests).Error
	return interests, err
}

func (r *InterestRepositoryImpl) ListInterestsByUser(userID string) ([]models.InvestorInterest, error) {
	var interests []models.InvestorInterest
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interests).Error
	return interests, err
}

func (r *InterestRepositoryImpl) TransitionStatus(id string, status models.InterestStatus, responseMessage, termSheet string) error {
	result := r.db.Model(&models.InvestorInterest{}).
		Where("id = ? AND status = ?", id, models.InterestStatusPending).
		Updates(map[string]interface{}{
			"status":           status,
			"response_message": responseMessage,
			"term_sheet":       termSheet,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Disambiguate missing vs already-terminal
		var count int64
		if err := r.db.Model(&models.InvestorInterest{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrInterestNotFound
		}
		return ErrInterestNotPending
	}

	return nil
}
