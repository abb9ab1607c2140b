package repository

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	CreateRecipients(ctx context.Context, recipients []entity.NotificationRecipient) error
	GetListByUserID(ctx context.Context, userID string) ([]entity.Notification, error)
}

type notificationRepository struct{}

func NewNotificationRepository() *notificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return xcontext.DB(ctx).Create(notification).Error
}

func (r *notificationRepository) CreateRecipients(
	ctx context.Context, recipients []entity.NotificationRecipient,
) error {
	if len(recipients) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Create(recipients).Error
}

func (r *notificationRepository) GetListByUserID(
	ctx context.Context, userID string,
) ([]entity.Notification, error) {
	var result []entity.Notification
	err := xcontext.DB(ctx).
		Joins("JOIN notification_recipients ON notification_recipients.notification_id=notifications.id").
		Where("notification_recipients.user_id=?", userID).
		Order("notifications.created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
