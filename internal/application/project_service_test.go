package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupProjectServiceMocks(t *testing.T) (*ProjectService, *repoMocks, *recordingEmitter) {
	m := setupRepoMocks(t)
	emitter := &recordingEmitter{}
	svc := NewProjectService(m.repos, NewNotificationService(m.repos, emitter, nil))
	return svc, m, emitter
}

func staffUser(id uint) user.User {
	return user.User{ID: id, Role: user.Role{Name: user.RoleStaff}}
}

func techUser(id uint) user.User {
	return user.User{ID: id, Role: user.Role{Name: user.RoleTechnician}}
}

func clientUser(id uint) user.User {
	return user.User{ID: id, Role: user.Role{Name: user.RoleClient}}
}

// --------------------- ListProjects ---------------------
func TestListProjects_ScopedByRole(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	page := query.NewPage(1, 10)

	m.project.EXPECT().ListProjects(ctx, project.ListFilter{}, project.Scope{}, page).Return(nil, int64(0), nil)
	m.project.EXPECT().ListProjects(ctx, project.ListFilter{}, project.Scope{ManagerID: ptr(staffActor.ID)}, page).Return(nil, int64(0), nil)
	m.project.EXPECT().ListProjects(ctx, project.ListFilter{}, project.Scope{TechnicianID: ptr(techActor.ID)}, page).Return(nil, int64(0), nil)
	m.project.EXPECT().ListProjects(ctx, project.ListFilter{}, project.Scope{ClientID: ptr(clientActor.ID)}, page).Return(nil, int64(0), nil)

	for _, actor := range []Actor{adminActor, staffActor, techActor, clientActor} {
		_, _, err := svc.ListProjects(ctx, actor, project.ListFilter{}, page)
		assert.NoError(t, err)
	}
}

// --------------------- GetProject ---------------------
func TestGetProject_OutOfScopeIsNotFound(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{ID: 5, Managers: []user.User{staffUser(9)}}, nil)

	_, err := svc.GetProject(ctx, staffActor, 5)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetProject_ClientSeesOwn(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{ID: 5, ClientID: ptr(clientActor.ID)}, nil)

	p, err := svc.GetProject(ctx, clientActor, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), p.ID)
}

func TestGetProject_Missing(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{}, gorm.ErrRecordNotFound)

	_, err := svc.GetProject(ctx, adminActor, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- CreateProject ---------------------
func TestCreateProject_ExternalWithoutClient(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{2}).Return([]user.User{staffUser(2)}, nil)

	_, err := svc.CreateProject(ctx, adminActor, project.CreateProjectDTO{
		Name:        "Portal",
		ProjectType: project.TypeExternal,
		ManagerIDs:  []uint{2},
	})
	assert.ErrorIs(t, err, ErrClientRequired)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateProject_ExternalWithoutManager(t *testing.T) {
	svc, _, _ := setupProjectServiceMocks(t)

	_, err := svc.CreateProject(context.Background(), adminActor, project.CreateProjectDTO{
		Name:        "Portal",
		ProjectType: project.TypeExternal,
		ClientID:    ptr(uint(4)),
	})
	assert.ErrorIs(t, err, ErrManagerRequired)
}

func TestCreateProject_InternalWithClient(t *testing.T) {
	svc, _, _ := setupProjectServiceMocks(t)

	_, err := svc.CreateProject(context.Background(), adminActor, project.CreateProjectDTO{
		Name:        "Intranet",
		ProjectType: project.TypeInternal,
		ClientID:    ptr(uint(4)),
	})
	assert.ErrorIs(t, err, ErrClientNotAllowed)
}

func TestCreateProject_ManagerMustBeStaff(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{3}).Return([]user.User{techUser(3)}, nil)

	_, err := svc.CreateProject(ctx, adminActor, project.CreateProjectDTO{
		Name:        "Intranet",
		ProjectType: project.TypeInternal,
		ManagerIDs:  []uint{3},
	})
	assert.ErrorIs(t, err, ErrInvalidManager)
}

func TestCreateProject_ClientMustHaveClientRole(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{2}).Return([]user.User{staffUser(2)}, nil)
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{9}).Return([]user.User{staffUser(9)}, nil)

	_, err := svc.CreateProject(ctx, adminActor, project.CreateProjectDTO{
		Name:        "Portal",
		ProjectType: project.TypeExternal,
		ClientID:    ptr(uint(9)),
		ManagerIDs:  []uint{2},
	})
	assert.ErrorIs(t, err, ErrInvalidClient)
}

func TestCreateProject_ExternalNotifiesMembers(t *testing.T) {
	svc, m, emitter := setupProjectServiceMocks(t)
	ctx := context.Background()

	m.user.EXPECT().ListUsersByIDs(ctx, []uint{2}).Return([]user.User{staffUser(2)}, nil)
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{3}).Return([]user.User{techUser(3)}, nil)
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{4}).Return([]user.User{clientUser(4)}, nil)
	m.project.EXPECT().CreateProject(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
		assert.Equal(t, adminActor.ID, p.CreatedByID)
		assert.Len(t, p.Managers, 1)
		p.ID = 5
		return nil
	})
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{
		ID:          5,
		Name:        "Portal",
		ProjectType: project.TypeExternal,
		ClientID:    ptr(uint(4)),
		Managers:    []user.User{staffUser(2)},
		Technicians: []user.User{techUser(3)},
	}, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rows []notification.Notification) error {
		require.Len(t, rows, 2)
		assert.Equal(t, notification.TypeProjectAssigned, rows[0].Type)
		return nil
	})

	p, err := svc.CreateProject(ctx, adminActor, project.CreateProjectDTO{
		Name:          " Portal ",
		ProjectType:   project.TypeExternal,
		ClientID:      ptr(uint(4)),
		ManagerIDs:    []uint{2},
		TechnicianIDs: []uint{3},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), p.ID)
	assert.ElementsMatch(t, []string{"user:2", "user:3"}, emitter.rooms())
}

// --------------------- UpdateProject ---------------------
func TestUpdateProject_StaffNotManager(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{ID: 5, ProjectType: project.TypeInternal}, nil)

	_, err := svc.UpdateProject(ctx, staffActor, 5, project.UpdateProjectDTO{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateProject_StaffCannotChangeManagers(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{
		ID:          5,
		ProjectType: project.TypeInternal,
		Managers:    []user.User{staffUser(staffActor.ID)},
	}, nil)

	_, err := svc.UpdateProject(ctx, staffActor, 5, project.UpdateProjectDTO{ManagerIDs: &[]uint{9}})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateProject_SwitchToExternalRequiresClient(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{
		ID:          5,
		ProjectType: project.TypeInternal,
		Managers:    []user.User{staffUser(2)},
	}, nil)

	_, err := svc.UpdateProject(ctx, adminActor, 5, project.UpdateProjectDTO{ProjectType: ptr(project.TypeExternal)})
	assert.ErrorIs(t, err, ErrClientRequired)
}

func TestUpdateProject_ManagerAddsTechnician(t *testing.T) {
	svc, m, emitter := setupProjectServiceMocks(t)
	ctx := context.Background()

	existing := project.Project{ID: 5, Name: "Intranet", ProjectType: project.TypeInternal, Managers: []user.User{staffUser(2)}}
	updated := existing
	updated.Technicians = []user.User{techUser(3)}

	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(existing, nil)
	m.user.EXPECT().ListUsersByIDs(ctx, []uint{3}).Return([]user.User{techUser(3)}, nil)
	m.project.EXPECT().UpdateProject(ctx, gomock.Any()).Return(nil)
	m.project.EXPECT().ReplaceTechnicians(ctx, gomock.Any(), []user.User{techUser(3)}).Return(nil)
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(updated, nil)
	m.notification.EXPECT().CreateNotifications(ctx, gomock.Len(1)).Return(nil)

	p, err := svc.UpdateProject(ctx, staffActor, 5, project.UpdateProjectDTO{TechnicianIDs: &[]uint{3}})
	require.NoError(t, err)
	assert.Len(t, p.Technicians, 1)
	assert.Equal(t, []string{"user:3"}, emitter.rooms())
}

// --------------------- DeleteProject ---------------------
func TestDeleteProject_InUse(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{ID: 5}, nil)
	m.ticket.EXPECT().CountTicketsByProject(ctx, uint(5)).Return(int64(2), nil)

	err := svc.DeleteProject(ctx, adminActor, 5)
	assert.ErrorIs(t, err, ErrProjectInUse)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteProject_Success(t *testing.T) {
	svc, m, _ := setupProjectServiceMocks(t)
	ctx := context.Background()
	m.project.EXPECT().GetProjectByID(ctx, uint(5)).Return(project.Project{ID: 5}, nil)
	m.ticket.EXPECT().CountTicketsByProject(ctx, uint(5)).Return(int64(0), nil)
	m.project.EXPECT().DeleteProject(ctx, uint(5)).Return(nil)

	assert.NoError(t, svc.DeleteProject(ctx, adminActor, 5))
}
