package repositories

import (
	"errors"

	"gorm.io/gorm"

	"venturelink_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification type constants
const (
	NotificationTypeNewRound       = "new_round"
	NotificationTypeNewInterest    = "new_interest"
	NotificationTypeInterestStatus = "interest_status"
	NotificationTypeNewFollower    = "new_follower"
)

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	ListForRecipient(userID string) ([]models.Notification, error)
	CountForRecipient(userID string) (int64, error)
	DeleteNotification(id string) error
	DeleteForRecipient(userID string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindNotificationByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) ListForRecipient(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("to_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) CountForRecipient(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("to_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) DeleteNotification(id string) error {
	result := r.db.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) DeleteForRecipient(userID string) error {
	return r.db.Where("to_id = ?", userID).Delete(&models.Notification{}).Error
}
