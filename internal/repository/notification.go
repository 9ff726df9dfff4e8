package repository

import (
	"context"
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock

type NotificationRepo interface {
	CreateNotifications(ctx context.Context, items []notification.Notification) error
	ListNotifications(ctx context.Context, userID uint, filter notification.ListFilter, page query.Page) ([]notification.Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID, id uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	DeleteNotification(ctx context.Context, userID, id uint) error
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) CreateNotifications(ctx context.Context, items []notification.Notification) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 100).Error
}

func (r *DBNotificationRepo) ListNotifications(ctx context.Context, userID uint, filter notification.ListFilter, page query.Page) ([]notification.Notification, int64, error) {
	q := r.db.WithContext(ctx).Model(&notification.Notification{}).Where("user_id = ?", userID)
	if filter.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []notification.Notification
	err := q.Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&items).Error
	return items, total, err
}

func (r *DBNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}

// MarkRead returns gorm.ErrRecordNotFound when the notification does not belong to userID.
func (r *DBNotificationRepo) MarkRead(ctx context.Context, userID, id uint) error {
	var n notification.Notification
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	return r.db.WithContext(ctx).Model(&n).Updates(map[string]any{
		"is_read": true,
		"read_at": time.Now(),
	}).Error
}

func (r *DBNotificationRepo) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) DeleteNotification(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&notification.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBNotificationRepo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&notification.Notification{})
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}
