package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
)

const attachmentURLExpiry = 15 * time.Minute

// Upload describes a file received from a multipart form.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func attachmentKey(ticketID uint, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return path.Join("tickets", fmt.Sprint(ticketID), uuid.NewString()+ext)
}

func (s *TicketService) UploadAttachment(ctx context.Context, actor Actor, ticketID uint, up Upload) (ticket.Attachment, error) {
	if up.Body == nil || up.Size == 0 {
		return ticket.Attachment{}, ErrFileRequired
	}
	if config.MaxUploadSize > 0 && up.Size > config.MaxUploadSize {
		return ticket.Attachment{}, ErrFileTooLarge
	}
	if _, err := s.GetTicket(ctx, actor, ticketID); err != nil {
		return ticket.Attachment{}, err
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	a := ticket.Attachment{
		TicketID:     ticketID,
		FileName:     filepath.Base(up.FileName),
		ObjectKey:    attachmentKey(ticketID, up.FileName),
		ContentType:  contentType,
		Size:         up.Size,
		UploadedByID: actor.ID,
	}
	if err := s.Storage.Put(ctx, a.ObjectKey, up.Body, up.Size, contentType); err != nil {
		return ticket.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}
	if err := s.Repos.Ticket.CreateAttachment(ctx, &a); err != nil {
		if rmErr := s.Storage.Remove(ctx, a.ObjectKey); rmErr != nil {
			slog.Warn("remove orphaned attachment", "error", rmErr, "key", a.ObjectKey)
		}
		return ticket.Attachment{}, err
	}

	url, err := s.Storage.PresignedURL(ctx, a.ObjectKey, attachmentURLExpiry)
	if err != nil {
		slog.Warn("presign attachment", "error", err, "key", a.ObjectKey)
	}
	a.URL = url
	recordAudit(ctx, s.Repos, actor, "create", "ticket_attachment", fmt.Sprintf("t_id=%d", ticketID), nil, a, a.FileName)
	return a, nil
}

// ListAttachments leaves URL empty when object storage is not configured.
func (s *TicketService) ListAttachments(ctx context.Context, actor Actor, ticketID uint) ([]ticket.Attachment, error) {
	if _, err := s.GetTicket(ctx, actor, ticketID); err != nil {
		return nil, err
	}
	attachments, err := s.Repos.Ticket.ListAttachments(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		url, err := s.Storage.PresignedURL(ctx, attachments[i].ObjectKey, attachmentURLExpiry)
		if errors.Is(err, storage.ErrNotConfigured) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("presign attachment: %w", err)
		}
		attachments[i].URL = url
	}
	return attachments, nil
}
