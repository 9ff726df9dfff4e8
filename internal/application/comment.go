package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/comment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

// CommentService gates every comment operation on visibility of the parent ticket.
type CommentService struct {
	Repos         *repository.Repos
	Tickets       *TicketService
	Notifications *NotificationService
}

func NewCommentService(repos *repository.Repos, tickets *TicketService, notifications *NotificationService) *CommentService {
	return &CommentService{
		Repos:         repos,
		Tickets:       tickets,
		Notifications: notifications,
	}
}

func (s *CommentService) ListComments(ctx context.Context, actor Actor, ticketID uint, page query.Page) ([]comment.Comment, int64, error) {
	if _, err := s.Tickets.GetTicket(ctx, actor, ticketID); err != nil {
		return nil, 0, err
	}
	return s.Repos.Comment.ListCommentsByTicket(ctx, ticketID, page)
}

func (s *CommentService) CreateComment(ctx context.Context, actor Actor, input comment.CreateCommentDTO) (comment.Comment, error) {
	t, err := s.Tickets.GetTicket(ctx, actor, input.TicketID)
	if err != nil {
		return comment.Comment{}, err
	}

	c := comment.Comment{
		Content:     input.Content,
		ContentHTML: s.Tickets.render(input.Content),
		TicketID:    t.ID,
		UserID:      actor.ID,
	}
	if err := s.Repos.Comment.CreateComment(ctx, &c); err != nil {
		return comment.Comment{}, err
	}
	created, err := s.getComment(ctx, c.ID)
	if err != nil {
		return comment.Comment{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "comment", fmt.Sprintf("c_id=%d", c.ID), nil, created, "")

	if s.Notifications != nil {
		s.Notifications.NotifyUsers(ctx, actor.ID, t.ParticipantIDs(), notification.Payload{
			Type:      notification.TypeCommentAdded,
			Message:   fmt.Sprintf("%s commented on ticket %q", created.User.FullName(), t.Title),
			TicketID:  &t.ID,
			ProjectID: t.ProjectID,
			CreatedAt: time.Now(),
		})
	}
	return created, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, actor Actor, id uint, input comment.UpdateCommentDTO) (comment.Comment, error) {
	c, err := s.getComment(ctx, id)
	if err != nil {
		return comment.Comment{}, err
	}
	if c.UserID != actor.ID {
		return comment.Comment{}, fmt.Errorf("%w: only the author can edit a comment", ErrForbidden)
	}
	before := c
	c.Content = input.Content
	c.ContentHTML = s.Tickets.render(input.Content)
	if err := s.Repos.Comment.UpdateComment(ctx, &c); err != nil {
		return comment.Comment{}, err
	}
	recordAudit(ctx, s.Repos, actor, "update", "comment", fmt.Sprintf("c_id=%d", id), before, c, "")
	return c, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor Actor, id uint) error {
	c, err := s.getComment(ctx, id)
	if err != nil {
		return err
	}
	if c.UserID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the author or an admin can delete a comment", ErrForbidden)
	}
	if err := s.Repos.Comment.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	recordAudit(ctx, s.Repos, actor, "delete", "comment", fmt.Sprintf("c_id=%d", id), c, nil, "")
	return nil
}

func (s *CommentService) getComment(ctx context.Context, id uint) (comment.Comment, error) {
	c, err := s.Repos.Comment.GetCommentByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return comment.Comment{}, ErrCommentNotFound
	}
	return c, err
}
