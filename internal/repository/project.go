package repository

import (
	"context"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=project.go -destination=mock/project_mock.go -package=mock

type ProjectRepo interface {
	ListProjects(ctx context.Context, filter project.ListFilter, scope project.Scope, page query.Page) ([]project.Project, int64, error)
	GetProjectByID(ctx context.Context, id uint) (project.Project, error)
	CreateProject(ctx context.Context, p *project.Project) error
	UpdateProject(ctx context.Context, p *project.Project) error
	ReplaceManagers(ctx context.Context, p *project.Project, managers []user.User) error
	ReplaceTechnicians(ctx context.Context, p *project.Project, technicians []user.User) error
	DeleteProject(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) ListProjects(ctx context.Context, filter project.ListFilter, scope project.Scope, page query.Page) ([]project.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&project.Project{})

	if filter.ProjectType != nil {
		q = q.Where("project_type = ?", *filter.ProjectType)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var conds []string
	var args []any
	if scope.ManagerID != nil {
		conds = append(conds, "projects.id IN (SELECT project_id FROM project_managers WHERE user_id = ?)")
		args = append(args, *scope.ManagerID)
	}
	if scope.TechnicianID != nil {
		conds = append(conds, "projects.id IN (SELECT project_id FROM project_technicians WHERE user_id = ?)")
		args = append(args, *scope.TechnicianID)
	}
	if scope.ClientID != nil {
		conds = append(conds, "projects.client_id = ?")
		args = append(args, *scope.ClientID)
	}
	if len(conds) > 0 {
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []project.Project
	err := q.Preload("Client").
		Preload("Managers").
		Preload("Technicians").
		Order("projects.created_at DESC, projects.id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&projects).Error
	return projects, total, err
}

func (r *DBProjectRepo) GetProjectByID(ctx context.Context, id uint) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Managers").
		Preload("Technicians").
		First(&p, id).Error
	return p, err
}

// CreateProject inserts the project and its join rows. Referenced users must already exist.
func (r *DBProjectRepo) CreateProject(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).
		Omit("Client", "Managers.*", "Technicians.*").
		Create(p).Error
}

// UpdateProject saves scalar columns only; membership changes go through Replace*.
func (r *DBProjectRepo) UpdateProject(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *DBProjectRepo) ReplaceManagers(ctx context.Context, p *project.Project, managers []user.User) error {
	if err := r.db.WithContext(ctx).Model(p).Omit("Managers.*").Association("Managers").Replace(managers); err != nil {
		return err
	}
	p.Managers = managers
	return nil
}

func (r *DBProjectRepo) ReplaceTechnicians(ctx context.Context, p *project.Project, technicians []user.User) error {
	if err := r.db.WithContext(ctx).Model(p).Omit("Technicians.*").Association("Technicians").Replace(technicians); err != nil {
		return err
	}
	p.Technicians = technicians
	return nil
}

func (r *DBProjectRepo) DeleteProject(ctx context.Context, id uint) error {
	p := project.Project{ID: id}
	res := r.db.WithContext(ctx).Select("Managers", "Technicians").Delete(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
