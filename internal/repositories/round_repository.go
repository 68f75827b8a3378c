package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venturelink_backend/internal/models"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository interface {
	CreateRound(round *models.Round) error
	FindRoundByID(id string) (*models.Round, error)
	UpdateRound(round *models.Round) error
	DeleteRound(id string) error
	ListRoundsByCompany(companyID string) ([]models.Round, error)
	ListOpenRounds(limit int) ([]models.Round, error)
	// AppendInvestor adds a contribution entry and accumulates RaisedAmount
	// in one row-locked transaction, so concurrent contributions cannot lose
	// updates.
	AppendInvestor(roundID string, entry models.RoundInvestor) (*models.Round, error)
}

type RoundRepositoryImpl struct {
	db *gorm.DB
}

func NewRoundRepository(db *gorm.DB) RoundRepository {
	return &RoundRepositoryImpl{db: db}
}

func (r *RoundRepositoryImpl) CreateRound(round *models.Round) error {
	return r.db.Create(round).Error
}

func (r *RoundRepositoryImpl) FindRoundByID(id string) (*models.Round, error) {
	var round models.Round
	err := r.db.First(&round, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func (r *RoundRepositoryImpl) UpdateRound(round *models.Round) error {
	return r.db.Save(round).Error
}

func (r *RoundRepositoryImpl) DeleteRound(id string) error {
	result := r.db.Delete(&models.Round{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoundNotFound
	}
	return nil
}

func (r *RoundRepositoryImpl) ListRoundsByCompany(companyID string) ([]models.Round, error) {
	var rounds []models.Round
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&rounds).Error
	return rounds, err
}

func (r *RoundRepositoryImpl) ListOpenRounds(limit int) ([]models.Round, error) {
	query := r.db.Where("status = ?", models.RoundStatusOpen).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rounds []models.Round
	err := query.Find(&rounds).Error
	return rounds, err
}

func (r *RoundRepositoryImpl) AppendInvestor(roundID string, entry models.RoundInvestor) (*models.Round, error) {
	var round models.Round

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&round, "id = ?", roundID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoundNotFound
		}
		if err != nil {
			return err
		}

		var entries []models.RoundInvestor
		if len(round.Investors) > 0 {
			if err := json.Unmarshal(round.Investors, &entries); err != nil {
				return fmt.Errorf("failed to decode round investors: %w", err)
			}
		}
		entries = append(entries, entry)

		entriesJSON, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to encode round investors: %w", err)
		}

		round.Investors = datatypes.JSON(entriesJSON)
		round.RaisedAmount += entry.Amount

		return tx.Model(&models.Round{}).
			Where("id = ?", roundID).
			Updates(map[string]interface{}{
				"investors":     round.Investors,
				"raised_amount": round.RaisedAmount,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &round, nil
}
