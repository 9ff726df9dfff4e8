package application

import (
	"context"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/stats"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	Repos *repository.Repos
}

func NewStatsService(repos *repository.Repos) *StatsService {
	return &StatsService{Repos: repos}
}

// Overview runs the dashboard counts concurrently. Every known enum value is
// present in the result, zero when no row matches.
func (s *StatsService) Overview(ctx context.Context) (stats.Overview, error) {
	var byRole, byType, byStatus, byPriority, byCondition []stats.KeyCount

	// Each goroutine writes to its own slice; Wait orders the reads below.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byRole, err = s.Repos.Stats.UsersByRole(gctx)
		return err
	})
	g.Go(func() (err error) {
		byType, err = s.Repos.Stats.ProjectsByType(gctx)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = s.Repos.Stats.TicketsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		byPriority, err = s.Repos.Stats.TicketsByPriority(gctx)
		return err
	})
	g.Go(func() (err error) {
		byCondition, err = s.Repos.Stats.EquipmentByCondition(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.Overview{}, err
	}

	var out stats.Overview
	out.Users.ByRole, out.Users.Total = stats.Fold(user.AllRoles, byRole)
	out.Projects.ByType, out.Projects.Total = stats.Fold([]project.Type{project.TypeInternal, project.TypeExternal}, byType)
	out.Tickets.ByStatus, out.Tickets.Total = stats.Fold(ticket.AllStatuses, byStatus)
	out.Tickets.ByPriority, _ = stats.Fold(ticket.AllPriorities, byPriority)
	out.Equipment.ByCondition, out.Equipment.Total = stats.Fold(equipment.AllConditions, byCondition)
	return out, nil
}
