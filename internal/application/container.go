package application

import (
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/mailer"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/markdown"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
)

type Services struct {
	Audit        *AuditService
	Comment      *CommentService
	Equipment    *EquipmentService
	Notification *NotificationService
	Project      *ProjectService
	Stats        *StatsService
	Ticket       *TicketService
	User         *UserService
}

func New(repos *repository.Repos, emitter realtime.Emitter, m mailer.Mailer, md markdown.Renderer, store storage.ObjectStore) *Services {
	notifications := NewNotificationService(repos, emitter, m)
	tickets := NewTicketService(repos, notifications, md, store)
	return &Services{
		Audit:        NewAuditService(repos),
		Comment:      NewCommentService(repos, tickets, notifications),
		Equipment:    NewEquipmentService(repos),
		Notification: notifications,
		Project:      NewProjectService(repos, notifications),
		Stats:        NewStatsService(repos),
		Ticket:       tickets,
		User:         NewUserService(repos),
	}
}
