package services

import (
	"venturelink_backend/internal/logger"
	"venturelink_backend/internal/models"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

// NotificationDispatcher is the fire-and-forget contract the other services
// depend on. Dispatch never reports failure to its caller: a notification
// that cannot be written is logged and dropped, it must not fail the primary
// operation that triggered it.
type NotificationDispatcher interface {
	Dispatch(payload dto.NotificationPayload)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Dispatch writes one notification record for one recipient. Best effort.
func (s *NotificationService) Dispatch(payload dto.NotificationPayload) {
	notification := &models.Notification{
		Type:   payload.Type,
		Title:  payload.Title,
		Desc:   payload.Desc,
		FromID: payload.From,
		ToID:   payload.To,
		URL:    payload.URL,
	}

	err := s.notificationRepo.CreateNotification(notification)
	logger.DispatchLog(payload.Type, payload.To, err)
}

// ListForRecipient returns the caller's inbox, newest-first. The inbox holds
// exactly the unacknowledged alerts: acknowledging deletes the record.
func (s *NotificationService) ListForRecipient(callerID string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListForRecipient(callerID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, buildNotificationResponse(&n))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         int64(len(responses)),
	}, nil
}

// Acknowledge removes a notification from the caller's inbox. Read = gone.
func (s *NotificationService) Acknowledge(callerID, notificationID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}

	if notification.ToID != callerID {
		// Do not leak other actors' notification ids
		return apperrors.ErrNotFound(repositories.ErrNotificationNotFound)
	}

	if err := s.notificationRepo.DeleteNotification(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	return nil
}

// AcknowledgeAll empties the caller's inbox.
func (s *NotificationService) AcknowledgeAll(callerID string) error {
	if err := s.notificationRepo.DeleteForRecipient(callerID); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

func buildNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Desc:      n.Desc,
		From:      n.FromID,
		To:        n.ToID,
		URL:       n.URL,
		CreatedAt: n.CreatedAt,
	}
}
