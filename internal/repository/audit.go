package repository

import (
	"context"
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/audit"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock

type AuditRepo interface {
	GetAuditLogs(ctx context.Context, params audit.QueryParams, page query.Page) ([]audit.AuditLog, int64, error)
	CreateAuditLog(ctx context.Context, log *audit.AuditLog) error
	DeleteOldAuditLogs(ctx context.Context, retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) DeleteOldAuditLogs(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) GetAuditLogs(ctx context.Context, params audit.QueryParams, page query.Page) ([]audit.AuditLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&audit.AuditLog{})

	if params.UserID != nil {
		q = q.Where("user_id = ?", *params.UserID)
	}
	if params.ResourceType != nil {
		q = q.Where("resource_type = ?", *params.ResourceType)
	}
	if params.Action != nil {
		q = q.Where("action = ?", *params.Action)
	}
	if params.StartTime != nil {
		q = q.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		q = q.Where("created_at <= ?", *params.EndTime)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []audit.AuditLog
	err := q.Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&logs).Error
	return logs, total, err
}

func (r *DBAuditRepo) CreateAuditLog(ctx context.Context, log *audit.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
