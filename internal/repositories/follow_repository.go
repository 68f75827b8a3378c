package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venturelink_backend/internal/models"
)

type FollowRepository interface {
	// AddFollower inserts the edge if absent. Returns false when the edge
	// already existed. Single atomic statement, safe under concurrent calls.
	AddFollower(companyID, userID string) (bool, error)
	// RemoveFollower deletes the edge if present. Returns false when there
	// was nothing to remove.
	RemoveFollower(companyID, userID string) (bool, error)
	IsFollowing(companyID, userID string) (bool, error)
	ListFollowerIDs(companyID string) ([]string, error)
	ListFollowedCompanyIDs(userID string) ([]string, error)
	CountFollowers(companyID string) (int64, error)
}

type FollowRepositoryImpl struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &FollowRepositoryImpl{db: db}
}

func (r *FollowRepositoryImpl) AddFollower(companyID, userID string) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.CompanyFollower{
		CompanyID: companyID,
		UserID:    userID,
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FollowRepositoryImpl) RemoveFollower(companyID, userID string) (bool, error) {
	result := r.db.Where("company_id = ? AND user_id = ?", companyID, userID).
		Delete(&models.CompanyFollower{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FollowRepositoryImpl) IsFollowing(companyID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CompanyFollower{}).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *FollowRepositoryImpl) ListFollowerIDs(companyID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.CompanyFollower{}).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *FollowRepositoryImpl) ListFollowedCompanyIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.CompanyFollower{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("company_id", &ids).Error
	return ids, err
}

func (r *FollowRepositoryImpl) CountFollowers(companyID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CompanyFollower{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}
