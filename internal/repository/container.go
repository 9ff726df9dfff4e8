package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Project      ProjectRepo
	Ticket       TicketRepo
	Equipment    EquipmentRepo
	Comment      CommentRepo
	Notification NotificationRepo
	Audit        AuditRepo
	Stats        StatsRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Project:      NewProjectRepo(db),
		Ticket:       NewTicketRepo(db),
		Equipment:    NewEquipmentRepo(db),
		Comment:      NewCommentRepo(db),
		Notification: NewNotificationRepo(db),
		Audit:        NewAuditRepo(db),
		Stats:        NewStatsRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Project:      r.Project.WithTx(tx),
		Ticket:       r.Ticket.WithTx(tx),
		Equipment:    r.Equipment.WithTx(tx),
		Comment:      r.Comment.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		Stats:        r.Stats,
		db:           tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction.
// Without a database handle (unit tests with mocks) fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
