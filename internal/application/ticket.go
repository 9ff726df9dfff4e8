package application

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/metrics"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/markdown"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
	"gorm.io/gorm"
)

type TicketService struct {
	Repos         *repository.Repos
	Notifications *NotificationService
	Markdown      markdown.Renderer
	Storage       storage.ObjectStore
}

func NewTicketService(repos *repository.Repos, notifications *NotificationService, md markdown.Renderer, store storage.ObjectStore) *TicketService {
	if store == nil {
		store = storage.Disabled{}
	}
	return &TicketService{
		Repos:         repos,
		Notifications: notifications,
		Markdown:      md,
		Storage:       store,
	}
}

// ticketScope: staff see what they manage or created, technicians what they are
// assigned to or created, everybody else only what they created.
func ticketScope(actor Actor) ticket.Scope {
	id := actor.ID
	switch actor.Role {
	case user.RoleAdmin:
		return ticket.Scope{}
	case user.RoleStaff:
		return ticket.Scope{CreatedBy: &id, ManagedBy: &id}
	case user.RoleTechnician:
		return ticket.Scope{CreatedBy: &id, AssignedTo: &id}
	default:
		return ticket.Scope{CreatedBy: &id}
	}
}

func canViewTicket(actor Actor, t *ticket.Ticket) bool {
	if actor.IsAdmin() || t.CreatedByID == actor.ID {
		return true
	}
	switch actor.Role {
	case user.RoleStaff:
		return t.IsManager(actor.ID) || (t.Project != nil && t.Project.HasManager(actor.ID))
	case user.RoleTechnician:
		return t.IsAssigned(actor.ID)
	}
	return false
}

func (s *TicketService) ListTickets(ctx context.Context, actor Actor, filter ticket.ListFilter, page query.Page) ([]ticket.Ticket, int64, error) {
	return s.Repos.Ticket.ListTickets(ctx, filter, ticketScope(actor), page)
}

func (s *TicketService) ListStatuses(ctx context.Context) ([]ticket.Status, error) {
	return s.Repos.Ticket.ListStatuses(ctx)
}

// GetTicket reports ErrTicketNotFound for tickets outside the actor's scope.
func (s *TicketService) GetTicket(ctx context.Context, actor Actor, id uint) (ticket.Ticket, error) {
	t, err := s.getTicket(ctx, id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !canViewTicket(actor, &t) {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, actor Actor, input ticket.CreateTicketDTO) (ticket.Ticket, error) {
	t := ticket.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Type:        input.Type,
		Priority:    ticket.PriorityMedium,
		CreatedByID: actor.ID,
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}

	var proj *project.Project
	if input.Type.NeedsProject() {
		if input.ProjectID == nil {
			return ticket.Ticket{}, ErrProjectRequired
		}
		if input.EquipmentID != nil {
			return ticket.Ticket{}, ErrTicketTargetInvalid
		}
		p, err := s.loadProject(ctx, *input.ProjectID)
		if err != nil {
			return ticket.Ticket{}, err
		}
		if !canFileOnProject(actor, &p) {
			return ticket.Ticket{}, fmt.Errorf("%w: you cannot open tickets on this project", ErrForbidden)
		}
		proj = &p
		t.ProjectID = &p.ID
		if p.ProjectType == project.TypeExternal {
			if m := p.PrimaryManager(); m != nil {
				t.ManagerID = &m.ID
			}
		}
	} else {
		if input.EquipmentID == nil {
			return ticket.Ticket{}, ErrEquipmentRequired
		}
		if input.ProjectID != nil {
			return ticket.Ticket{}, ErrTicketTargetInvalid
		}
		e, err := s.loadEquipment(ctx, *input.EquipmentID)
		if err != nil {
			return ticket.Ticket{}, err
		}
		if !canFileOnEquipment(actor, &e) {
			return ticket.Ticket{}, fmt.Errorf("%w: you cannot open tickets on this equipment", ErrForbidden)
		}
		t.EquipmentID = &e.ID
	}

	open, err := s.Repos.Ticket.GetStatusByName(ctx, ticket.StatusOpen)
	if err != nil {
		return ticket.Ticket{}, fmt.Errorf("load open status: %w", err)
	}
	t.StatusID = open.ID
	t.DescriptionHTML = s.render(t.Description)

	if err := s.Repos.Ticket.CreateTicket(ctx, &t); err != nil {
		return ticket.Ticket{}, err
	}
	metrics.IncrementTicketCreated(string(t.Type))

	created, err := s.getTicket(ctx, t.ID)
	if err != nil {
		return ticket.Ticket{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "ticket", fmt.Sprintf("t_id=%d", created.ID), nil, created, "")
	s.notifyCreated(ctx, actor, &created, proj)
	return created, nil
}

// canFileOnProject: clients only on external projects they own.
func canFileOnProject(actor Actor, p *project.Project) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleStaff:
		return p.HasManager(actor.ID)
	case user.RoleTechnician:
		return p.HasTechnician(actor.ID)
	case user.RoleClient:
		return p.ProjectType == project.TypeExternal && p.IsClient(actor.ID)
	}
	return false
}

func canFileOnEquipment(actor Actor, e *equipment.Equipment) bool {
	switch actor.Role {
	case user.RoleAdmin, user.RoleStaff:
		return true
	case user.RoleTechnician:
		return e.AssignedToID != nil && *e.AssignedToID == actor.ID
	}
	return false
}

// UpdateTicket applies the fields the actor is allowed to touch:
// creator (while open) or admin may edit title, description and priority;
// admin or ticket manager may reassign, change status and priority;
// an assigned technician may change status.
func (s *TicketService) UpdateTicket(ctx context.Context, actor Actor, id uint, input ticket.UpdateTicketDTO) (ticket.Ticket, error) {
	t, err := s.GetTicket(ctx, actor, id)
	if err != nil {
		return ticket.Ticket{}, err
	}

	isAdmin := actor.IsAdmin()
	isManager := t.IsManager(actor.ID)
	isCreator := t.CreatedByID == actor.ID
	isOpen := t.Status.Name == ticket.StatusOpen
	canEditContent := isAdmin || (isCreator && isOpen)
	canTriage := isAdmin || isManager

	contentDenied := ErrTicketFieldDenied
	if isCreator && !isOpen {
		contentDenied = ErrTicketNotOpen
	}
	if (input.Title != nil || input.Description != nil) && !canEditContent {
		return ticket.Ticket{}, contentDenied
	}
	if input.Priority != nil && !canEditContent && !canTriage {
		return ticket.Ticket{}, contentDenied
	}
	if (input.ManagerID != nil || input.TechnicianIDs != nil) && !canTriage {
		return ticket.Ticket{}, ErrTicketFieldDenied
	}
	if input.StatusID != nil && !canTriage && !t.IsAssigned(actor.ID) {
		return ticket.Ticket{}, ErrTicketFieldDenied
	}

	before := t
	oldAssignees := make([]uint, 0, len(t.AssignedUsers))
	for _, u := range t.AssignedUsers {
		oldAssignees = append(oldAssignees, u.ID)
	}

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = *input.Description
		t.DescriptionHTML = s.render(t.Description)
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}

	statusChanged := false
	if input.StatusID != nil && *input.StatusID != t.StatusID {
		st, err := s.Repos.Ticket.GetStatusByID(ctx, *input.StatusID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.Ticket{}, ErrStatusNotFound
		}
		if err != nil {
			return ticket.Ticket{}, err
		}
		applyStatus(&t, st, time.Now())
		statusChanged = true
	}

	var newManager *user.User
	if input.ManagerID != nil {
		if *input.ManagerID == 0 {
			t.ManagerID = nil
		} else if !t.IsManager(*input.ManagerID) {
			managers, err := loadUsersWithRole(ctx, s.Repos, []uint{*input.ManagerID}, user.RoleStaff, ErrInvalidManager)
			if err != nil {
				return ticket.Ticket{}, err
			}
			newManager = &managers[0]
			t.ManagerID = &newManager.ID
		}
	}

	var technicians []user.User
	if input.TechnicianIDs != nil {
		technicians, err = loadUsersWithRole(ctx, s.Repos, *input.TechnicianIDs, user.RoleTechnician, ErrInvalidTech)
		if err != nil {
			return ticket.Ticket{}, err
		}
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Ticket.UpdateTicket(ctx, &t); err != nil {
			return err
		}
		if input.TechnicianIDs != nil {
			return r.Ticket.ReplaceAssignees(ctx, &t, technicians)
		}
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	updated, err := s.getTicket(ctx, t.ID)
	if err != nil {
		return ticket.Ticket{}, err
	}
	recordAudit(ctx, s.Repos, actor, "update", "ticket", fmt.Sprintf("t_id=%d", updated.ID), before, updated, "")

	if statusChanged {
		s.notify(ctx, actor, []uint{updated.CreatedByID}, notification.TypeTicketStatusChanged, &updated,
			fmt.Sprintf("Ticket %q is now %s", updated.Title, updated.Status.Name))
	}
	var assigned []user.User
	if newManager != nil {
		assigned = append(assigned, *newManager)
	}
	if input.TechnicianIDs != nil {
		added := newIDs(oldAssignees, userIDs(technicians))
		for _, u := range technicians {
			if containsID(added, u.ID) {
				assigned = append(assigned, u)
			}
		}
	}
	s.notifyAssigned(ctx, actor, &updated, assigned)
	return updated, nil
}

// applyStatus sets the status and keeps ResolvedAt in step with it.
func applyStatus(t *ticket.Ticket, st ticket.Status, now time.Time) {
	t.StatusID = st.ID
	t.Status = st
	if st.Name == ticket.StatusResolved {
		t.ResolvedAt = &now
	} else {
		t.ResolvedAt = nil
	}
}

// DeleteTicket is allowed to admins and to the creator while the ticket is open.
func (s *TicketService) DeleteTicket(ctx context.Context, actor Actor, id uint) error {
	t, err := s.GetTicket(ctx, actor, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		if t.CreatedByID != actor.ID {
			return ErrForbidden
		}
		if t.Status.Name != ticket.StatusOpen {
			return ErrTicketNotOpen
		}
	}

	attachments, err := s.Repos.Ticket.ListAttachments(ctx, id)
	if err != nil {
		return err
	}
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		return r.Ticket.DeleteTicket(ctx, id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTicketNotFound
	}
	if err != nil {
		return err
	}

	for _, a := range attachments {
		if err := s.Storage.Remove(ctx, a.ObjectKey); err != nil {
			slog.Warn("remove attachment object", "error", err, "ticket_id", id, "key", a.ObjectKey)
		}
	}
	recordAudit(ctx, s.Repos, actor, "delete", "ticket", fmt.Sprintf("t_id=%d", id), t, nil, "")
	return nil
}

func (s *TicketService) notifyCreated(ctx context.Context, actor Actor, t *ticket.Ticket, proj *project.Project) {
	if s.Notifications == nil {
		return
	}
	p := ticketPayload(notification.TypeTicketCreated, t, fmt.Sprintf("New ticket: %s", t.Title))

	if t.Manager != nil {
		s.Notifications.NotifyUsers(ctx, actor.ID, []uint{t.Manager.ID}, p)
		if t.Manager.ID != actor.ID {
			s.Notifications.Email([]user.User{*t.Manager}, "Ticket assigned: "+t.Title, ticketEmail(t, proj))
		}
	}
	s.Notifications.NotifyRole(ctx, actor.ID, user.RoleAdmin, p)
	if t.EquipmentID != nil {
		s.Notifications.NotifyRole(ctx, actor.ID, user.RoleStaff, p)
	}
}

func (s *TicketService) notifyAssigned(ctx context.Context, actor Actor, t *ticket.Ticket, assignees []user.User) {
	if s.Notifications == nil || len(assignees) == 0 {
		return
	}
	s.notify(ctx, actor, userIDs(assignees), notification.TypeTicketAssigned, t,
		fmt.Sprintf("You have been assigned to ticket %q", t.Title))

	var recipients []user.User
	for _, u := range assignees {
		if u.ID != actor.ID {
			recipients = append(recipients, u)
		}
	}
	s.Notifications.Email(recipients, "Ticket assigned: "+t.Title, ticketEmail(t, t.Project))
}

func (s *TicketService) notify(ctx context.Context, actor Actor, ids []uint, typ notification.Type, t *ticket.Ticket, msg string) {
	if s.Notifications == nil {
		return
	}
	s.Notifications.NotifyUsers(ctx, actor.ID, ids, ticketPayload(typ, t, msg))
}

func ticketPayload(typ notification.Type, t *ticket.Ticket, msg string) notification.Payload {
	return notification.Payload{
		Type:      typ,
		Message:   msg,
		TicketID:  &t.ID,
		ProjectID: t.ProjectID,
		CreatedAt: time.Now(),
	}
}

func ticketEmail(t *ticket.Ticket, proj *project.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>You are now responsible for ticket <strong>#%d %s</strong>.</p>", t.ID, html.EscapeString(t.Title))
	if proj != nil {
		fmt.Fprintf(&b, "<p>Project: %s</p>", html.EscapeString(proj.Name))
	}
	fmt.Fprintf(&b, "<p>Priority: %s</p>", t.Priority)
	b.WriteString(t.DescriptionHTML)
	return b.String()
}

func (s *TicketService) render(src string) string {
	if s.Markdown == nil {
		return ""
	}
	out, err := s.Markdown.Render(src)
	if err != nil {
		slog.Warn("render markdown", "error", err)
		return ""
	}
	return out
}

func (s *TicketService) getTicket(ctx context.Context, id uint) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	return t, err
}

func (s *TicketService) loadProject(ctx context.Context, id uint) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return project.Project{}, ErrProjectNotFound
	}
	return p, err
}

func (s *TicketService) loadEquipment(ctx context.Context, id uint) (equipment.Equipment, error) {
	e, err := s.Repos.Equipment.GetEquipmentByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return equipment.Equipment{}, ErrEquipmentNotFound
	}
	return e, err
}

func userIDs(users []user.User) []uint {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
