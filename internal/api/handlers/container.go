package handlers

import (
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
)

type Handlers struct {
	Audit        *AuditHandler
	Auth         *AuthHandler
	Comment      *CommentHandler
	Equipment    *EquipmentHandler
	Notification *NotificationHandler
	Project      *ProjectHandler
	Stats        *StatsHandler
	Ticket       *TicketHandler
	User         *UserHandler
	WS           *WSHandler
}

func New(svc *application.Services, hub *realtime.Hub) *Handlers {
	return &Handlers{
		Audit:        NewAuditHandler(svc.Audit),
		Auth:         NewAuthHandler(svc.User),
		Comment:      NewCommentHandler(svc.Comment),
		Equipment:    NewEquipmentHandler(svc.Equipment),
		Notification: NewNotificationHandler(svc.Notification),
		Project:      NewProjectHandler(svc.Project),
		Stats:        NewStatsHandler(svc.Stats),
		Ticket:       NewTicketHandler(svc.Ticket),
		User:         NewUserHandler(svc.User),
		WS:           NewWSHandler(hub),
	}
}
