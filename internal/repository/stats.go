package repository

import (
	"context"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/stats"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"gorm.io/gorm"
)

//go:generate mockgen -source=stats.go -destination=mock/stats_mock.go -package=mock

// StatsRepo runs the GROUP BY counts behind the dashboard.
type StatsRepo interface {
	UsersByRole(ctx context.Context) ([]stats.KeyCount, error)
	ProjectsByType(ctx context.Context) ([]stats.KeyCount, error)
	TicketsByStatus(ctx context.Context) ([]stats.KeyCount, error)
	TicketsByPriority(ctx context.Context) ([]stats.KeyCount, error)
	EquipmentByCondition(ctx context.Context) ([]stats.KeyCount, error)
}

type DBStatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *DBStatsRepo {
	return &DBStatsRepo{
		db: db,
	}
}

func (r *DBStatsRepo) UsersByRole(ctx context.Context) ([]stats.KeyCount, error) {
	var rows []stats.KeyCount
	err := r.db.WithContext(ctx).Model(&user.User{}).
		Select(`roles.name AS "key", COUNT(*) AS "count"`).
		Joins("JOIN roles ON roles.id = users.role_id").
		Group("roles.name").
		Scan(&rows).Error
	return rows, err
}

func (r *DBStatsRepo) ProjectsByType(ctx context.Context) ([]stats.KeyCount, error) {
	return r.groupCount(ctx, &project.Project{}, "project_type")
}

func (r *DBStatsRepo) TicketsByStatus(ctx context.Context) ([]stats.KeyCount, error) {
	var rows []stats.KeyCount
	err := r.db.WithContext(ctx).Model(&ticket.Ticket{}).
		Select(`ticket_statuses.name AS "key", COUNT(*) AS "count"`).
		Joins("JOIN ticket_statuses ON ticket_statuses.id = tickets.status_id").
		Group("ticket_statuses.name").
		Scan(&rows).Error
	return rows, err
}

func (r *DBStatsRepo) TicketsByPriority(ctx context.Context) ([]stats.KeyCount, error) {
	return r.groupCount(ctx, &ticket.Ticket{}, "priority")
}

func (r *DBStatsRepo) EquipmentByCondition(ctx context.Context) ([]stats.KeyCount, error) {
	return r.groupCount(ctx, &equipment.Equipment{}, "condition")
}

func (r *DBStatsRepo) groupCount(ctx context.Context, model any, column string) ([]stats.KeyCount, error) {
	var rows []stats.KeyCount
	err := r.db.WithContext(ctx).Model(model).
		Select(column + ` AS "key", COUNT(*) AS "count"`).
		Group(column).
		Scan(&rows).Error
	return rows, err
}
