package repository

import (
	"context"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=ticket.go -destination=mock/ticket_mock.go -package=mock

type TicketRepo interface {
	ListTickets(ctx context.Context, filter ticket.ListFilter, scope ticket.Scope, page query.Page) ([]ticket.Ticket, int64, error)
	GetTicketByID(ctx context.Context, id uint) (ticket.Ticket, error)
	CreateTicket(ctx context.Context, t *ticket.Ticket) error
	UpdateTicket(ctx context.Context, t *ticket.Ticket) error
	ReplaceAssignees(ctx context.Context, t *ticket.Ticket, technicians []user.User) error
	DeleteTicket(ctx context.Context, id uint) error
	CountTicketsByProject(ctx context.Context, projectID uint) (int64, error)
	CountTicketsByEquipment(ctx context.Context, equipmentID uint) (int64, error)

	ListStatuses(ctx context.Context) ([]ticket.Status, error)
	GetStatusByID(ctx context.Context, id uint) (ticket.Status, error)
	GetStatusByName(ctx context.Context, name ticket.StatusName) (ticket.Status, error)

	CreateAttachment(ctx context.Context, a *ticket.Attachment) error
	ListAttachments(ctx context.Context, ticketID uint) ([]ticket.Attachment, error)

	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Status").
		Preload("Project").
		Preload("Equipment").
		Preload("CreatedBy").
		Preload("Manager").
		Preload("AssignedUsers")
}

func applyTicketScope(q *gorm.DB, scope ticket.Scope) *gorm.DB {
	if scope.IsZero() {
		return q
	}
	var conds []string
	var args []any
	if scope.CreatedBy != nil {
		conds = append(conds, "tickets.created_by_id = ?")
		args = append(args, *scope.CreatedBy)
	}
	if scope.ManagedBy != nil {
		conds = append(conds,
			"tickets.manager_id = ?",
			"tickets.project_id IN (SELECT project_id FROM project_managers WHERE user_id = ?)")
		args = append(args, *scope.ManagedBy, *scope.ManagedBy)
	}
	if scope.AssignedTo != nil {
		conds = append(conds, "tickets.id IN (SELECT ticket_id FROM ticket_assignees WHERE user_id = ?)")
		args = append(args, *scope.AssignedTo)
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func (r *DBTicketRepo) ListTickets(ctx context.Context, filter ticket.ListFilter, scope ticket.Scope, page query.Page) ([]ticket.Ticket, int64, error) {
	q := r.db.WithContext(ctx).Model(&ticket.Ticket{})

	if filter.StatusID != nil {
		q = q.Where("tickets.status_id = ?", *filter.StatusID)
	}
	if filter.Type != nil {
		q = q.Where("tickets.type = ?", *filter.Type)
	}
	if filter.Priority != nil {
		q = q.Where("tickets.priority = ?", *filter.Priority)
	}
	if filter.ProjectID != nil {
		q = q.Where("tickets.project_id = ?", *filter.ProjectID)
	}
	q = applyTicketScope(q, scope)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []ticket.Ticket
	err := r.preload(q).
		Order("tickets.created_at DESC, tickets.id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *DBTicketRepo) GetTicketByID(ctx context.Context, id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.preload(r.db.WithContext(ctx)).
		Preload("Project.Managers").
		First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) CreateTicket(ctx context.Context, t *ticket.Ticket) error {
	return r.db.WithContext(ctx).
		Omit("Status", "Project", "Equipment", "CreatedBy", "Manager", "AssignedUsers.*").
		Create(t).Error
}

func (r *DBTicketRepo) UpdateTicket(ctx context.Context, t *ticket.Ticket) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) ReplaceAssignees(ctx context.Context, t *ticket.Ticket, technicians []user.User) error {
	if err := r.db.WithContext(ctx).Model(t).Omit("AssignedUsers.*").Association("AssignedUsers").Replace(technicians); err != nil {
		return err
	}
	t.AssignedUsers = technicians
	return nil
}

// DeleteTicket removes the ticket with its assignee links, comments and attachment rows.
// Attachment objects in storage are the caller's concern.
func (r *DBTicketRepo) DeleteTicket(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM comments WHERE ticket_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Where("ticket_id = ?", id).Delete(&ticket.Attachment{}).Error; err != nil {
		return err
	}
	if err := db.Exec("UPDATE notifications SET ticket_id = NULL WHERE ticket_id = ?", id).Error; err != nil {
		return err
	}
	res := db.Select("AssignedUsers").Delete(&ticket.Ticket{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBTicketRepo) CountTicketsByProject(ctx context.Context, projectID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ticket.Ticket{}).Where("project_id = ?", projectID).Count(&n).Error
	return n, err
}

func (r *DBTicketRepo) CountTicketsByEquipment(ctx context.Context, equipmentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ticket.Ticket{}).Where("equipment_id = ?", equipmentID).Count(&n).Error
	return n, err
}

func (r *DBTicketRepo) ListStatuses(ctx context.Context) ([]ticket.Status, error) {
	var statuses []ticket.Status
	err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

func (r *DBTicketRepo) GetStatusByID(ctx context.Context, id uint) (ticket.Status, error) {
	var s ticket.Status
	err := r.db.WithContext(ctx).First(&s, id).Error
	return s, err
}

func (r *DBTicketRepo) GetStatusByName(ctx context.Context, name ticket.StatusName) (ticket.Status, error) {
	var s ticket.Status
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	return s, err
}

func (r *DBTicketRepo) CreateAttachment(ctx context.Context, a *ticket.Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *DBTicketRepo) ListAttachments(ctx context.Context, ticketID uint) ([]ticket.Attachment, error) {
	var out []ticket.Attachment
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
