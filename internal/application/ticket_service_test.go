package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/markdown"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore keeps objects in a map.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = b
	return nil
}

func (s *memStore) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://files.test/" + key, nil
}

func (s *memStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// --------------------- Setup ---------------------
func setupTicketServiceMocks(t *testing.T, store storage.ObjectStore) (*TicketService, *repoMocks, *recordingEmitter) {
	m := setupRepoMocks(t)
	emitter := &recordingEmitter{}
	svc := NewTicketService(m.repos, NewNotificationService(m.repos, emitter, nil), markdown.NewRenderer(), store)
	return svc, m, emitter
}

var openStatus = ticket.Status{ID: 1, Name: ticket.StatusOpen}

func externalProject() project.Project {
	return project.Project{
		ID:          5,
		Name:        "Portal",
		ProjectType: project.TypeExternal,
		ClientID:    ptr(clientActor.ID),
		Managers:    []user.User{staffUser(9), staffUser(staffActor.ID)},
		Technicians: []user.User{techUser(techActor.ID)},
	}
}

func internalProject() project.Project {
	return project.Project{
		ID:          6,
		Name:        "Intranet",
		ProjectType: project.TypeInternal,
		Managers:    []user.User{staffUser(staffActor.ID)},
	}
}

// --------------------- ListTickets ---------------------
func TestListTickets_ScopedByRole(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	page := query.NewPage(1, 10)

	m.ticket.EXPECT().ListTickets(ctx, ticket.ListFilter{}, ticket.Scope{}, page).Return(nil, int64(0), nil)
	m.ticket.EXPECT().ListTickets(ctx, ticket.ListFilter{}, ticket.Scope{CreatedBy: ptr(staffActor.ID), ManagedBy: ptr(staffActor.ID)}, page).Return(nil, int64(0), nil)
	m.ticket.EXPECT().ListTickets(ctx, ticket.ListFilter{}, ticket.Scope{CreatedBy: ptr(techActor.ID), AssignedTo: ptr(techActor.ID)}, page).Return(nil, int64(0), nil)
	m.ticket.EXPECT().ListTickets(ctx, ticket.ListFilter{}, ticket.Scope{CreatedBy: ptr(clientActor.ID)}, page).Return(nil, int64(0), nil)

	for _, actor := range []Actor{adminActor, staffActor, techActor, clientActor} {
		_, _, err := svc.ListTickets(ctx, actor, ticket.ListFilter{}, page)
		assert.NoError(t, err)
	}
}

// --------------------- GetTicket ---------------------
func TestGetTicket_Visibility(t *testing.T) {
	proj := internalProject()
	tk := ticket.Ticket{
		ID:            11,
		CreatedByID:   50,
		ProjectID:     &proj.ID,
		Project:       &proj,
		AssignedUsers: []user.User{techUser(techActor.ID)},
	}

	tests := []struct {
		name  string
		actor Actor
		ok    bool
	}{
		{"admin", adminActor, true},
		{"staff managing the project", staffActor, true},
		{"assigned technician", techActor, true},
		{"unrelated client", clientActor, false},
		{"unrelated technician", Actor{ID: 77, Role: user.RoleTechnician}, false},
		{"creator", Actor{ID: 50, Role: user.RoleClient}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _ := setupTicketServiceMocks(t, nil)
			ctx := context.Background()
			m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(tk, nil)

			_, err := svc.GetTicket(ctx, tt.actor, 11)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrTicketNotFound)
			}
		})
	}
}

// --------------------- CreateTicket ---------------------
func TestCreateTicket_ExternalAssignsFirstManager(t *testing.T) {
	svc, m, emitter := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	proj := externalProject()

	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(proj, nil)
	m.ticket.EXPECT().GetStatusByName(ctx, ticket.StatusOpen).Return(openStatus, nil)
	m.ticket.EXPECT().CreateTicket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		require.NotNil(t, tk.ManagerID)
		assert.Equal(t, staffActor.ID, *tk.ManagerID)
		assert.Equal(t, openStatus.ID, tk.StatusID)
		assert.Equal(t, ticket.PriorityMedium, tk.Priority)
		assert.Contains(t, tk.DescriptionHTML, "<strong>down</strong>")
		tk.ID = 11
		return nil
	})
	manager := staffUser(staffActor.ID)
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(ticket.Ticket{
		ID:          11,
		Title:       "Login broken",
		Type:        ticket.TypeTechnicalIssue,
		CreatedByID: clientActor.ID,
		ProjectID:   &proj.ID,
		Project:     &proj,
		ManagerID:   &manager.ID,
		Manager:     &manager,
	}, nil)
	m.user.EXPECT().ListUserIDsByRole(ctx, user.RoleAdmin).Return([]uint{adminActor.ID}, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rows []notification.Notification) error {
		require.Len(t, rows, 1)
		assert.Equal(t, notification.TypeTicketCreated, rows[0].Type)
		return nil
	}).Times(2)

	tk, err := svc.CreateTicket(ctx, clientActor, ticket.CreateTicketDTO{
		Title:       "Login broken",
		Description: "site is **down**",
		Type:        ticket.TypeTechnicalIssue,
		ProjectID:   ptr(uint(5)),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), tk.ID)
	assert.Equal(t, []string{"user:2", "role:ADMIN"}, emitter.rooms())
}

func TestCreateTicket_InternalLeavesManagerEmpty(t *testing.T) {
	svc, m, emitter := setupTicketServiceMocks(t, nil)
	ctx := context.Background()

	m.project.EXPECT().GetProjectByID(ctx, uint(6)).Return(internalProject(), nil)
	m.ticket.EXPECT().GetStatusByName(ctx, ticket.StatusOpen).Return(openStatus, nil)
	m.ticket.EXPECT().CreateTicket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		assert.Nil(t, tk.ManagerID)
		tk.ID = 12
		return nil
	})
	m.ticket.EXPECT().GetTicketByID(ctx, uint(12)).Return(ticket.Ticket{ID: 12, ProjectID: ptr(uint(6))}, nil)
	m.user.EXPECT().ListUserIDsByRole(ctx, user.RoleAdmin).Return([]uint{adminActor.ID}, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Len(1)).Return(nil)

	_, err := svc.CreateTicket(ctx, staffActor, ticket.CreateTicketDTO{
		Title:     "Printer",
		Type:      ticket.TypeNewFeature,
		ProjectID: ptr(uint(6)),
		Priority:  ptr(ticket.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"role:ADMIN"}, emitter.rooms())
}

func TestCreateTicket_ActorIsNotNotified(t *testing.T) {
	svc, m, emitter := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	proj := externalProject()
	proj.Managers = []user.User{staffUser(staffActor.ID)}
	manager := staffUser(staffActor.ID)

	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(proj, nil)
	m.ticket.EXPECT().GetStatusByName(ctx, ticket.StatusOpen).Return(openStatus, nil)
	m.ticket.EXPECT().CreateTicket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		tk.ID = 13
		return nil
	})
	m.ticket.EXPECT().GetTicketByID(ctx, uint(13)).Return(ticket.Ticket{ID: 13, ManagerID: &manager.ID, Manager: &manager}, nil)
	m.user.EXPECT().ListUserIDsByRole(ctx, user.RoleAdmin).Return([]uint{adminActor.ID}, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Len(1)).Return(nil)

	_, err := svc.CreateTicket(ctx, staffActor, ticket.CreateTicketDTO{
		Title:     "Self filed",
		Type:      ticket.TypeTechnicalIssue,
		ProjectID: ptr(uint(5)),
	})
	require.NoError(t, err)
	assert.NotContains(t, emitter.rooms(), "user:2")
	require.Len(t, emitter.events, 1)
	assert.Equal(t, staffActor.ID, emitter.events[0].ExcludeUserID)
}

func TestCreateTicket_EquipmentNotifiesStaff(t *testing.T) {
	svc, m, emitter := setupTicketServiceMocks(t, nil)
	ctx := context.Background()

	m.equipment.EXPECT().GetEquipmentByID(ctx, uint(8)).Return(equipment.Equipment{ID: 8, AssignedToID: ptr(techActor.ID)}, nil)
	m.ticket.EXPECT().GetStatusByName(ctx, ticket.StatusOpen).Return(openStatus, nil)
	m.ticket.EXPECT().CreateTicket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		assert.Nil(t, tk.ManagerID)
		assert.Nil(t, tk.ProjectID)
		tk.ID = 14
		return nil
	})
	m.ticket.EXPECT().GetTicketByID(ctx, uint(14)).Return(ticket.Ticket{ID: 14, EquipmentID: ptr(uint(8))}, nil)
	m.user.EXPECT().ListUserIDsByRole(ctx, user.RoleAdmin).Return([]uint{adminActor.ID}, nil)
	m.user.EXPECT().ListUserIDsByRole(ctx, user.RoleStaff).Return([]uint{staffActor.ID, 9}, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Any()).Return(nil).Times(2)

	_, err := svc.CreateTicket(ctx, techActor, ticket.CreateTicketDTO{
		Title:       "Laptop fan",
		Type:        ticket.TypeEquipmentIssue,
		EquipmentID: ptr(uint(8)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"role:ADMIN", "role:STAFF"}, emitter.rooms())
}

func TestCreateTicket_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		input ticket.CreateTicketDTO
		setup func(m *repoMocks)
		want  error
	}{
		{
			name:  "project type without project",
			actor: clientActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeTechnicalIssue},
			want:  ErrProjectRequired,
		},
		{
			name:  "equipment type without equipment",
			actor: techActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeEquipmentIssue},
			want:  ErrEquipmentRequired,
		},
		{
			name:  "both targets",
			actor: adminActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeNewFeature, ProjectID: ptr(uint(5)), EquipmentID: ptr(uint(8))},
			want:  ErrTicketTargetInvalid,
		},
		{
			name:  "missing project",
			actor: adminActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeNewFeature, ProjectID: ptr(uint(5))},
			setup: func(m *repoMocks) {
				m.project.EXPECT().GetProjectByID(gomock.Any(), uint(5)).Return(project.Project{}, gorm.ErrRecordNotFound)
			},
			want: ErrProjectNotFound,
		},
		{
			name:  "client on internal project",
			actor: clientActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeNewFeature, ProjectID: ptr(uint(6))},
			setup: func(m *repoMocks) {
				m.project.EXPECT().GetProjectByID(gomock.Any(), uint(6)).Return(internalProject(), nil)
			},
			want: ErrForbidden,
		},
		{
			name:  "client filing equipment issue",
			actor: clientActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeEquipmentIssue, EquipmentID: ptr(uint(8))},
			setup: func(m *repoMocks) {
				m.equipment.EXPECT().GetEquipmentByID(gomock.Any(), uint(8)).Return(equipment.Equipment{ID: 8}, nil)
			},
			want: ErrForbidden,
		},
		{
			name:  "technician not on project",
			actor: Actor{ID: 77, Role: user.RoleTechnician},
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeTechnicalIssue, ProjectID: ptr(uint(5))},
			setup: func(m *repoMocks) {
				m.project.EXPECT().GetProjectByID(gomock.Any(), uint(5)).Return(externalProject(), nil)
			},
			want: ErrForbidden,
		},
		{
			name:  "technician on unassigned equipment",
			actor: techActor,
			input: ticket.CreateTicketDTO{Title: "x", Type: ticket.TypeEquipmentIssue, EquipmentID: ptr(uint(8))},
			setup: func(m *repoMocks) {
				m.equipment.EXPECT().GetEquipmentByID(gomock.Any(), uint(8)).Return(equipment.Equipment{ID: 8}, nil)
			},
			want: ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _ := setupTicketServiceMocks(t, nil)
			if tt.setup != nil {
				tt.setup(m)
			}
			_, err := svc.CreateTicket(context.Background(), tt.actor, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// --------------------- UpdateTicket ---------------------
func openTicket() ticket.Ticket {
	return ticket.Ticket{
		ID:            11,
		Title:         "Login broken",
		StatusID:      openStatus.ID,
		Status:        openStatus,
		CreatedByID:   clientActor.ID,
		ManagerID:     ptr(staffActor.ID),
		AssignedUsers: []user.User{techUser(techActor.ID)},
	}
}

func TestUpdateTicket_TechnicianResolves(t *testing.T) {
	svc, m, emitter := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	resolved := ticket.Status{ID: 3, Name: ticket.StatusResolved}

	after := openTicket()
	after.Status = resolved
	after.StatusID = resolved.ID

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.ticket.EXPECT().GetStatusByID(ctx, uint(3)).Return(resolved, nil)
	m.ticket.EXPECT().UpdateTicket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		assert.Equal(t, resolved.ID, tk.StatusID)
		assert.NotNil(t, tk.ResolvedAt)
		return nil
	})
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(after, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rows []notification.Notification) error {
		require.Len(t, rows, 1)
		assert.Equal(t, clientActor.ID, rows[0].UserID)
		assert.Equal(t, notification.TypeTicketStatusChanged, rows[0].Type)
		return nil
	})

	_, err := svc.UpdateTicket(ctx, techActor, 11, ticket.UpdateTicketDTO{StatusID: ptr(uint(3))})
	require.NoError(t, err)
	assert.Equal(t, []string{"user:4"}, emitter.rooms())
}

func TestUpdateTicket_LeavingResolvedClearsTimestamp(t *testing.T) {
	now := time.Now()
	tk := openTicket()
	tk.ResolvedAt = &now
	applyStatus(&tk, ticket.Status{ID: 2, Name: ticket.StatusInProgress}, now)
	assert.Nil(t, tk.ResolvedAt)

	applyStatus(&tk, ticket.Status{ID: 3, Name: ticket.StatusResolved}, now)
	require.NotNil(t, tk.ResolvedAt)
	assert.Equal(t, now, *tk.ResolvedAt)
}

func TestUpdateTicket_FieldPermissions(t *testing.T) {
	inProgress := openTicket()
	inProgress.Status = ticket.Status{ID: 2, Name: ticket.StatusInProgress}

	tests := []struct {
		name   string
		actor  Actor
		ticket ticket.Ticket
		input  ticket.UpdateTicketDTO
		want   error
	}{
		{"technician edits title", techActor, openTicket(), ticket.UpdateTicketDTO{Title: ptr("x")}, ErrTicketFieldDenied},
		{"technician reassigns", techActor, openTicket(), ticket.UpdateTicketDTO{TechnicianIDs: &[]uint{}}, ErrTicketFieldDenied},
		{"technician sets priority", techActor, openTicket(), ticket.UpdateTicketDTO{Priority: ptr(ticket.PriorityLow)}, ErrTicketFieldDenied},
		{"creator edits after open", clientActor, inProgress, ticket.UpdateTicketDTO{Description: ptr("x")}, ErrTicketNotOpen},
		{"creator changes status", clientActor, openTicket(), ticket.UpdateTicketDTO{StatusID: ptr(uint(2))}, ErrTicketFieldDenied},
		{"creator sets manager", clientActor, openTicket(), ticket.UpdateTicketDTO{ManagerID: ptr(uint(9))}, ErrTicketFieldDenied},
		{"manager edits title", staffActor, openTicket(), ticket.UpdateTicketDTO{Title: ptr("x")}, ErrTicketFieldDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _ := setupTicketServiceMocks(t, nil)
			m.ticket.EXPECT().GetTicketByID(gomock.Any(), uint(11)).Return(tt.ticket, nil)

			_, err := svc.UpdateTicket(context.Background(), tt.actor, 11, tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestUpdateTicket_ManagerAssignsTechnician(t *testing.T) {
	svc, m, emitter := setupTicketServiceMocks(t, nil)
	ctx := context.Background()

	before := openTicket()
	before.AssignedUsers = nil
	after := openTicket()

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(before, nil)
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{techActor.ID}).Return([]user.User{techUser(techActor.ID)}, nil)
	m.ticket.EXPECT().UpdateTicket(ctx, gomock.Any()).Return(nil)
	m.ticket.EXPECT().ReplaceAssignees(ctx, gomock.Any(), []user.User{techUser(techActor.ID)}).Return(nil)
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(after, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rows []notification.Notification) error {
		require.Len(t, rows, 1)
		assert.Equal(t, techActor.ID, rows[0].UserID)
		assert.Equal(t, notification.TypeTicketAssigned, rows[0].Type)
		return nil
	})

	_, err := svc.UpdateTicket(ctx, staffActor, 11, ticket.UpdateTicketDTO{TechnicianIDs: &[]uint{techActor.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{"user:3"}, emitter.rooms())
}

func TestUpdateTicket_TechnicianRoleRequired(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{9}).Return([]user.User{staffUser(9)}, nil)

	_, err := svc.UpdateTicket(ctx, adminActor, 11, ticket.UpdateTicketDTO{TechnicianIDs: &[]uint{9}})
	assert.ErrorIs(t, err, ErrInvalidTech)
}

func TestUpdateTicket_UnknownStatus(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.ticket.EXPECT().GetStatusByID(ctx, uint(42)).Return(ticket.Status{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateTicket(ctx, adminActor, 11, ticket.UpdateTicketDTO{StatusID: ptr(uint(42))})
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

// --------------------- DeleteTicket ---------------------
func TestDeleteTicket_CreatorAfterOpen(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	tk := openTicket()
	tk.Status = ticket.Status{ID: 2, Name: ticket.StatusInProgress}
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(tk, nil)

	assert.ErrorIs(t, svc.DeleteTicket(ctx, clientActor, 11), ErrTicketNotOpen)
}

func TestDeleteTicket_ManagerIsForbidden(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)

	assert.ErrorIs(t, svc.DeleteTicket(ctx, staffActor, 11), ErrForbidden)
}

func TestDeleteTicket_AdminRemovesAttachments(t *testing.T) {
	store := newMemStore()
	store.objects["tickets/11/a.png"] = []byte("png")
	svc, m, _ := setupTicketServiceMocks(t, store)
	ctx := context.Background()

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.ticket.EXPECT().ListAttachments(ctx, uint(11)).Return([]ticket.Attachment{{ID: 1, TicketID: 11, ObjectKey: "tickets/11/a.png"}}, nil)
	m.ticket.EXPECT().DeleteTicket(ctx, uint(11)).Return(nil)

	require.NoError(t, svc.DeleteTicket(ctx, adminActor, 11))
	assert.Empty(t, store.objects)
}

// --------------------- Attachments ---------------------
func TestUploadAttachment_TooLarge(t *testing.T) {
	old := config.MaxUploadSize
	config.MaxUploadSize = 4
	defer func() { config.MaxUploadSize = old }()

	svc, _, _ := setupTicketServiceMocks(t, newMemStore())
	_, err := svc.UploadAttachment(context.Background(), adminActor, 11, Upload{
		FileName: "big.txt",
		Size:     5,
		Body:     strings.NewReader("12345"),
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadAttachment_Success(t *testing.T) {
	store := newMemStore()
	svc, m, _ := setupTicketServiceMocks(t, store)
	ctx := context.Background()

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.ticket.EXPECT().CreateAttachment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *ticket.Attachment) error {
		a.ID = 1
		return nil
	})

	a, err := svc.UploadAttachment(ctx, clientActor, 11, Upload{
		FileName:    "../screen.PNG",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "screen.PNG", a.FileName)
	assert.True(t, strings.HasPrefix(a.ObjectKey, "tickets/11/"))
	assert.True(t, strings.HasSuffix(a.ObjectKey, ".png"))
	assert.Equal(t, "https://files.test/"+a.ObjectKey, a.URL)
	assert.Contains(t, store.objects, a.ObjectKey)

	require.Len(t, m.audits, 1)
	assert.Equal(t, "create", m.audits[0].Action)
	assert.Equal(t, "ticket_attachment", m.audits[0].ResourceType)
}

func TestUploadAttachment_DBFailureRemovesObject(t *testing.T) {
	store := newMemStore()
	svc, m, _ := setupTicketServiceMocks(t, store)
	ctx := context.Background()

	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.ticket.EXPECT().CreateAttachment(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := svc.UploadAttachment(ctx, adminActor, 11, Upload{FileName: "a.txt", Size: 1, Body: strings.NewReader("a")})
	assert.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestUploadAttachment_StorageDisabled(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)

	_, err := svc.UploadAttachment(ctx, adminActor, 11, Upload{FileName: "a.txt", Size: 1, Body: strings.NewReader("a")})
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
}

func TestListAttachments_NoStorageLeavesURLEmpty(t *testing.T) {
	svc, m, _ := setupTicketServiceMocks(t, nil)
	ctx := context.Background()
	m.ticket.EXPECT().GetTicketByID(ctx, uint(11)).Return(openTicket(), nil)
	m.ticket.EXPECT().ListAttachments(ctx, uint(11)).Return([]ticket.Attachment{{ID: 1, ObjectKey: "k"}}, nil)

	out, err := svc.ListAttachments(ctx, adminActor, 11)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].URL)
}
