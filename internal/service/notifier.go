package service

import (
	"encoding/json"

	"barshift-backend/internal/database/models"
	"barshift-backend/internal/logger"
	"barshift-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notifier_mock.go -package=mocks

// Notifier dispatches fire-and-forget notifications. Implementations must
// never return delivery problems to the caller; a failed dispatch is logged
// and dropped so it cannot abort the operation that triggered it.
type Notifier interface {
	Dispatch(userID uuid.UUID, notificationType models.NotificationType, title, message string, data map[string]interface{})
}

// NotificationService persists notifications for client retrieval and logs
// each dispatch. Delivery transports (push, email) are out of scope; rows
// are the durable record.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
	log  *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{
		repo: repo,
		log:  logger.New().WithField("component", "notifier"),
	}
}

// Dispatch records a notification for one user. Failures are swallowed.
func (s *NotificationService) Dispatch(userID uuid.UUID, notificationType models.NotificationType, title, message string, data map[string]interface{}) {
	var payload json.RawMessage
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			s.log.WithField("user_id", userID).Warnf("dropping notification payload: %v", err)
		} else {
			payload = raw
		}
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		Data:    payload,
	}

	if err := s.repo.Create(notification); err != nil {
		s.log.WithFields(map[string]interface{}{
			"user_id": userID,
			"type":    notificationType,
		}).Errorf("failed to persist notification: %v", err)
		return
	}

	s.log.WithFields(map[string]interface{}{
		"user_id": userID,
		"type":    notificationType,
	}).Debug("notification dispatched")
}

// ListForUser retrieves a user's notifications, newest first
func (s *NotificationService) ListForUser(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetByUserID(userID, limit, offset)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	return s.repo.MarkRead(id)
}
