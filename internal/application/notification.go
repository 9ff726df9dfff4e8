package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/metrics"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/mailer"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

// NotificationService persists one notification row per recipient and pushes
// the payload over the realtime channel. The actor never notifies themselves.
type NotificationService struct {
	Repos   *repository.Repos
	emitter realtime.Emitter
	mailer  mailer.Mailer
}

func NewNotificationService(repos *repository.Repos, emitter realtime.Emitter, m mailer.Mailer) *NotificationService {
	if m == nil {
		m = mailer.Noop{}
	}
	return &NotificationService{
		Repos:   repos,
		emitter: emitter,
		mailer:  m,
	}
}

// NotifyUsers sends p to each user in userIDs except actorID.
func (s *NotificationService) NotifyUsers(ctx context.Context, actorID uint, userIDs []uint, p notification.Payload) {
	recipients := uniqueExcept(userIDs, actorID)
	if len(recipients) == 0 {
		return
	}
	if !s.persist(ctx, recipients, p) {
		return
	}
	for _, id := range recipients {
		s.emit(ctx, realtime.Event{Room: realtime.UserRoom(id), Name: notification.EventNewNotification, Data: p})
	}
}

// NotifyRole persists p for every holder of role except actorID and emits a
// single event to the role room.
func (s *NotificationService) NotifyRole(ctx context.Context, actorID uint, role user.RoleName, p notification.Payload) {
	ids, err := s.Repos.User.ListUserIDsByRole(ctx, role)
	if err != nil {
		slog.Error("list role members for notification", "error", err, "role", role, "type", p.Type)
		return
	}
	recipients := uniqueExcept(ids, actorID)
	if len(recipients) == 0 {
		return
	}
	if !s.persist(ctx, recipients, p) {
		return
	}
	s.emit(ctx, realtime.Event{
		Room:          realtime.RoleRoom(string(role)),
		Name:          notification.EventNewNotification,
		Data:          p,
		ExcludeUserID: actorID,
	})
}

// Email sends in the background when SMTP is configured.
func (s *NotificationService) Email(to []user.User, subject, htmlBody string) {
	if !s.mailer.Enabled() || len(to) == 0 {
		return
	}
	go func() {
		for _, u := range to {
			if err := s.mailer.Send(u.Email, subject, htmlBody); err != nil {
				metrics.IncrementEmailSent("failed")
				slog.Error("send email", "error", err, "to", u.Email, "subject", subject)
				continue
			}
			metrics.IncrementEmailSent("success")
		}
	}()
}

func (s *NotificationService) persist(ctx context.Context, recipients []uint, p notification.Payload) bool {
	rows := make([]notification.Notification, 0, len(recipients))
	for _, id := range recipients {
		rows = append(rows, p.For(id))
	}
	if err := s.Repos.Notification.CreateNotifications(ctx, rows); err != nil {
		slog.Error("persist notifications", "error", err, "type", p.Type, "recipients", len(rows))
		return false
	}
	metrics.AddNotifications(string(p.Type), len(rows))
	return true
}

func (s *NotificationService) emit(ctx context.Context, ev realtime.Event) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(ctx, ev)
}

func (s *NotificationService) List(ctx context.Context, actor Actor, filter notification.ListFilter, page query.Page) ([]notification.Notification, int64, error) {
	return s.Repos.Notification.ListNotifications(ctx, actor.ID, filter, page)
}

func (s *NotificationService) UnreadCount(ctx context.Context, actor Actor) (int64, error) {
	return s.Repos.Notification.CountUnread(ctx, actor.ID)
}

func (s *NotificationService) MarkRead(ctx context.Context, actor Actor, id uint) error {
	err := s.Repos.Notification.MarkRead(ctx, actor.ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *NotificationService) MarkAllRead(ctx context.Context, actor Actor) (int64, error) {
	return s.Repos.Notification.MarkAllRead(ctx, actor.ID)
}

func (s *NotificationService) Delete(ctx context.Context, actor Actor, id uint) error {
	err := s.Repos.Notification.DeleteNotification(ctx, actor.ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

// CleanupRead removes read notifications older than days.
func (s *NotificationService) CleanupRead(ctx context.Context, days int) (int64, error) {
	return s.Repos.Notification.DeleteReadBefore(ctx, time.Now().AddDate(0, 0, -days))
}

func uniqueExcept(ids []uint, except uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || id == except {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
