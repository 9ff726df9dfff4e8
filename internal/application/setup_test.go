package application

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/audit"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository/mock"
)

type repoMocks struct {
	repos        *repository.Repos
	user         *mock.MockUserRepo
	project      *mock.MockProjectRepo
	ticket       *mock.MockTicketRepo
	equipment    *mock.MockEquipmentRepo
	comment      *mock.MockCommentRepo
	notification *mock.MockNotificationRepo
	audit        *mock.MockAuditRepo
	stats        *mock.MockStatsRepo

	// audits collects every audit entry written during the test
	audits []*audit.AuditLog
}

// setupRepoMocks wires every repository to a mock. Audit writes are always accepted and recorded.
func setupRepoMocks(t *testing.T) *repoMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		user:         mock.NewMockUserRepo(ctrl),
		project:      mock.NewMockProjectRepo(ctrl),
		ticket:       mock.NewMockTicketRepo(ctrl),
		equipment:    mock.NewMockEquipmentRepo(ctrl),
		comment:      mock.NewMockCommentRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
		audit:        mock.NewMockAuditRepo(ctrl),
		stats:        mock.NewMockStatsRepo(ctrl),
	}
	m.repos = &repository.Repos{
		User:         m.user,
		Project:      m.project,
		Ticket:       m.ticket,
		Equipment:    m.equipment,
		Comment:      m.comment,
		Notification: m.notification,
		Audit:        m.audit,
		Stats:        m.stats,
	}
	m.audit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *audit.AuditLog) error {
		m.audits = append(m.audits, entry)
		return nil
	}).AnyTimes()
	return m
}

// recordingEmitter captures emitted events.
type recordingEmitter struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (e *recordingEmitter) Emit(_ context.Context, ev realtime.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *recordingEmitter) rooms() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Room)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
