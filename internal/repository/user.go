package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user.go -destination=mock/user_mock.go -package=mock

type UserRepo interface {
	ListUsers(ctx context.Context, filter user.ListFilter, page query.Page) ([]user.User, int64, error)
	GetUserByID(ctx context.Context, id uint) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	ListUsersByIDs(ctx context.Context, ids []uint) ([]user.User, error)
	ListUserIDsByRole(ctx context.Context, role user.RoleName) ([]uint, error)
	CreateUser(ctx context.Context, u *user.User) error
	SaveUser(ctx context.Context, u *user.User) error
	DeleteUser(ctx context.Context, id uint) error
	ListRoles(ctx context.Context) ([]user.Role, error)
	GetRoleByID(ctx context.Context, id uint) (user.Role, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) ListUsers(ctx context.Context, filter user.ListFilter, page query.Page) ([]user.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&user.User{})
	if filter.RoleID != nil {
		q = q.Where("role_id = ?", *filter.RoleID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?)", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []user.User
	err := q.Preload("Role").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) GetUserByID(ctx context.Context, id uint) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Preload("Role").First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsersByIDs(ctx context.Context, ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Preload("Role").Where("id IN ?", ids).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUserIDsByRole(ctx context.Context, role user.RoleName) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&user.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", role).
		Order("users.id ASC").
		Pluck("users.id", &ids).Error
	return ids, err
}

func (r *DBUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Omit("Role").Create(u).Error
}

func (r *DBUserRepo) SaveUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Omit("Role").Save(u).Error
}

// userReferences are the columns that point at users.id.
var userReferences = []struct{ table, column string }{
	{"tickets", "created_by_id"},
	{"tickets", "manager_id"},
	{"ticket_assignees", "user_id"},
	{"projects", "client_id"},
	{"project_managers", "user_id"},
	{"project_technicians", "user_id"},
	{"comments", "user_id"},
	{"equipment", "assigned_to_id"},
}

// DeleteUser refuses with gorm.ErrForeignKeyViolated while any row still
// references the user, whether or not the database enforces foreign keys.
func (r *DBUserRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range userReferences {
			var n int64
			if err := tx.Table(ref.table).Where(ref.column+" = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("user %d referenced by %s.%s: %w", id, ref.table, ref.column, gorm.ErrForeignKeyViolated)
			}
		}

		res := tx.Delete(&user.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *DBUserRepo) ListRoles(ctx context.Context) ([]user.Role, error) {
	var roles []user.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *DBUserRepo) GetRoleByID(ctx context.Context, id uint) (user.Role, error) {
	var role user.Role
	err := r.db.WithContext(ctx).First(&role, id).Error
	return role, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
