package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos         *repository.Repos
	Notifications *NotificationService
}

func NewProjectService(repos *repository.Repos, notifications *NotificationService) *ProjectService {
	return &ProjectService{
		Repos:         repos,
		Notifications: notifications,
	}
}

// projectScope limits listings to projects the actor manages, works on or owns.
func projectScope(actor Actor) project.Scope {
	id := actor.ID
	switch actor.Role {
	case user.RoleAdmin:
		return project.Scope{}
	case user.RoleStaff:
		return project.Scope{ManagerID: &id}
	case user.RoleTechnician:
		return project.Scope{TechnicianID: &id}
	default:
		return project.Scope{ClientID: &id}
	}
}

func canViewProject(actor Actor, p *project.Project) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleStaff:
		return p.HasManager(actor.ID)
	case user.RoleTechnician:
		return p.HasTechnician(actor.ID)
	case user.RoleClient:
		return p.IsClient(actor.ID)
	}
	return false
}

func (s *ProjectService) ListProjects(ctx context.Context, actor Actor, filter project.ListFilter, page query.Page) ([]project.Project, int64, error) {
	return s.Repos.Project.ListProjects(ctx, filter, projectScope(actor), page)
}

// GetProject reports ErrProjectNotFound for projects outside the actor's scope.
func (s *ProjectService) GetProject(ctx context.Context, actor Actor, id uint) (project.Project, error) {
	p, err := s.getProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if !canViewProject(actor, &p) {
		return project.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, actor Actor, input project.CreateProjectDTO) (project.Project, error) {
	p := project.Project{
		Name:        strings.TrimSpace(input.Name),
		ProjectType: input.ProjectType,
		ClientID:    input.ClientID,
		CreatedByID: actor.ID,
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if err := s.resolveMembers(ctx, &p, &input.ManagerIDs, &input.TechnicianIDs); err != nil {
		return project.Project{}, err
	}
	if err := s.validateProject(ctx, &p); err != nil {
		return project.Project{}, err
	}

	if err := s.Repos.Project.CreateProject(ctx, &p); err != nil {
		return project.Project{}, err
	}

	created, err := s.getProject(ctx, p.ID)
	if err != nil {
		return project.Project{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "project", fmt.Sprintf("p_id=%d", created.ID), nil, created, "")
	s.notifyAssigned(ctx, actor, &created, created.MemberIDs())
	return created, nil
}

// UpdateProject lets admins change anything. A staff manager of the project may
// edit its details and technicians but not its client or managers.
func (s *ProjectService) UpdateProject(ctx context.Context, actor Actor, id uint, input project.UpdateProjectDTO) (project.Project, error) {
	p, err := s.getProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if !actor.IsAdmin() {
		if !actor.Is(user.RoleStaff) || !p.HasManager(actor.ID) {
			return project.Project{}, ErrForbidden
		}
		if input.ManagerIDs != nil || input.ClientID != nil || input.ProjectType != nil {
			return project.Project{}, fmt.Errorf("%w: only an admin can change the project type, client or managers", ErrForbidden)
		}
	}

	before := p
	oldMembers := p.MemberIDs()

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.ProjectType != nil {
		p.ProjectType = *input.ProjectType
	}
	if input.ClientID != nil {
		if *input.ClientID == 0 {
			p.ClientID = nil
		} else {
			p.ClientID = input.ClientID
		}
	} else if p.ProjectType == project.TypeInternal {
		p.ClientID = nil
	}
	p.Client = nil
	if err := s.resolveMembers(ctx, &p, input.ManagerIDs, input.TechnicianIDs); err != nil {
		return project.Project{}, err
	}
	if err := s.validateProject(ctx, &p); err != nil {
		return project.Project{}, err
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Project.UpdateProject(ctx, &p); err != nil {
			return err
		}
		if input.ManagerIDs != nil {
			if err := r.Project.ReplaceManagers(ctx, &p, p.Managers); err != nil {
				return err
			}
		}
		if input.TechnicianIDs != nil {
			if err := r.Project.ReplaceTechnicians(ctx, &p, p.Technicians); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return project.Project{}, err
	}

	updated, err := s.getProject(ctx, p.ID)
	if err != nil {
		return project.Project{}, err
	}
	recordAudit(ctx, s.Repos, actor, "update", "project", fmt.Sprintf("p_id=%d", updated.ID), before, updated, "")
	s.notifyAssigned(ctx, actor, &updated, newIDs(oldMembers, updated.MemberIDs()))
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, actor Actor, id uint) error {
	p, err := s.getProject(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.Repos.Ticket.CountTicketsByProject(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProjectInUse
	}
	if err := s.Repos.Project.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	recordAudit(ctx, s.Repos, actor, "delete", "project", fmt.Sprintf("p_id=%d", id), p, nil, "")
	return nil
}

func (s *ProjectService) getProject(ctx context.Context, id uint) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return project.Project{}, ErrProjectNotFound
	}
	return p, err
}

// resolveMembers loads the given manager and technician ids into p. A nil
// pointer leaves the corresponding list untouched.
func (s *ProjectService) resolveMembers(ctx context.Context, p *project.Project, managerIDs, technicianIDs *[]uint) error {
	if managerIDs != nil {
		managers, err := s.usersWithRole(ctx, *managerIDs, user.RoleStaff, ErrInvalidManager)
		if err != nil {
			return err
		}
		p.Managers = managers
	}
	if technicianIDs != nil {
		techs, err := s.usersWithRole(ctx, *technicianIDs, user.RoleTechnician, ErrInvalidTech)
		if err != nil {
			return err
		}
		p.Technicians = techs
	}
	return nil
}

func (s *ProjectService) validateProject(ctx context.Context, p *project.Project) error {
	switch p.ProjectType {
	case project.TypeExternal:
		if p.ClientID == nil {
			return ErrClientRequired
		}
		if len(p.Managers) == 0 {
			return ErrManagerRequired
		}
		if _, err := s.usersWithRole(ctx, []uint{*p.ClientID}, user.RoleClient, ErrInvalidClient); err != nil {
			return err
		}
	case project.TypeInternal:
		if p.ClientID != nil {
			return ErrClientNotAllowed
		}
	default:
		return fmt.Errorf("%w: unknown project type %q", ErrValidation, p.ProjectType)
	}
	return nil
}

// usersWithRole loads ids and fails with invalid unless every id exists and holds role.
func (s *ProjectService) usersWithRole(ctx context.Context, ids []uint, role user.RoleName, invalid error) ([]user.User, error) {
	return loadUsersWithRole(ctx, s.Repos, ids, role, invalid)
}

func (s *ProjectService) notifyAssigned(ctx context.Context, actor Actor, p *project.Project, userIDs []uint) {
	if s.Notifications == nil || len(userIDs) == 0 {
		return
	}
	s.Notifications.NotifyUsers(ctx, actor.ID, userIDs, notification.Payload{
		Type:      notification.TypeProjectAssigned,
		Message:   fmt.Sprintf("You have been added to project %q", p.Name),
		ProjectID: &p.ID,
		CreatedAt: time.Now(),
	})
}

func loadUsersWithRole(ctx context.Context, repos *repository.Repos, ids []uint, role user.RoleName, invalid error) ([]user.User, error) {
	ids = uniqueExcept(ids, 0)
	if len(ids) == 0 {
		return []user.User{}, nil
	}
	users, err := repos.User.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, invalid
	}
	for _, u := range users {
		if u.Role.Name != role {
			return nil, invalid
		}
	}
	return users, nil
}

// newIDs returns the ids in after that are not in before.
func newIDs(before, after []uint) []uint {
	old := make(map[uint]struct{}, len(before))
	for _, id := range before {
		old[id] = struct{}{}
	}
	var out []uint
	for _, id := range after {
		if _, ok := old[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
