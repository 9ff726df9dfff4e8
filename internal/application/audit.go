package application

import (
	"context"
	"log/slog"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/audit"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params audit.QueryParams, page query.Page) ([]audit.AuditLog, int64, error) {
	return s.Repos.Audit.GetAuditLogs(ctx, params, page)
}

func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(ctx, days)
}

// recordAudit writes an audit entry. Failures are logged, never returned.
func recordAudit(ctx context.Context, repos *repository.Repos, actor Actor, action, resourceType, resourceID string, before, after any, description string) {
	entry := utils.NewAuditLog(actor.ID, actor.IP, actor.UserAgent, action, resourceType, resourceID, before, after, description)
	if err := repos.Audit.CreateAuditLog(ctx, entry); err != nil {
		slog.Error("write audit log", "error", err, "action", action, "resource_type", resourceType, "resource_id", resourceID)
	}
}
