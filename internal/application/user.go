package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) Login(ctx context.Context, email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}
	if !utils.CheckPassword(usr.Password, password) {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr, config.TokenTTL)
	if err != nil {
		return user.User{}, "", fmt.Errorf("sign token: %w", err)
	}
	return usr, token, nil
}

func (s *UserService) Me(ctx context.Context, actor Actor) (user.User, error) {
	return s.getUser(ctx, actor.ID)
}

func (s *UserService) ChangePassword(ctx context.Context, actor Actor, input user.ChangePasswordInput) error {
	usr, err := s.getUser(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(usr.Password, input.OldPassword) {
		return ErrIncorrectPassword
	}
	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	usr.Password = hashed
	if err := s.Repos.User.SaveUser(ctx, &usr); err != nil {
		return err
	}
	recordAudit(ctx, s.Repos, actor, "update", "user", fmt.Sprintf("u_id=%d", usr.ID), nil, nil, "password changed")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, filter user.ListFilter, page query.Page) ([]user.User, int64, error) {
	return s.Repos.User.ListUsers(ctx, filter, page)
}

func (s *UserService) ListRoles(ctx context.Context) ([]user.Role, error) {
	return s.Repos.User.ListRoles(ctx)
}

// GetUser lets admins and staff read anyone, everybody else only themselves.
func (s *UserService) GetUser(ctx context.Context, actor Actor, id uint) (user.User, error) {
	if !actor.IsAdmin() && !actor.Is(user.RoleStaff) && actor.ID != id {
		return user.User{}, ErrForbidden
	}
	return s.getUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, actor Actor, input user.CreateUserInput) (user.User, error) {
	email := normalizeEmail(input.Email)

	if _, err := s.getRole(ctx, input.RoleID); err != nil {
		return user.User{}, err
	}
	if err := s.ensureEmailFree(ctx, email, 0); err != nil {
		return user.User{}, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return user.User{}, err
	}
	usr := user.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  hashed,
		Phone:     input.Phone,
		RoleID:    input.RoleID,
	}
	if err := s.Repos.User.CreateUser(ctx, &usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}

	created, err := s.getUser(ctx, usr.ID)
	if err != nil {
		return user.User{}, err
	}
	recordAudit(ctx, s.Repos, actor, "create", "user", fmt.Sprintf("u_id=%d", created.ID), nil, created, "")
	return created, nil
}

// UpdateUser lets admins edit anyone and users edit their own profile.
// Only admins may change roles or set a password directly.
func (s *UserService) UpdateUser(ctx context.Context, actor Actor, id uint, input user.UpdateUserInput) (user.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return user.User{}, ErrForbidden
	}
	if !actor.IsAdmin() {
		if input.RoleID != nil {
			return user.User{}, ErrRoleChange
		}
		if input.Password != nil {
			return user.User{}, ErrPasswordChange
		}
	}

	usr, err := s.getUser(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	before := usr

	if input.FirstName != nil {
		usr.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		usr.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		usr.Phone = input.Phone
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != usr.Email {
			if err := s.ensureEmailFree(ctx, email, usr.ID); err != nil {
				return user.User{}, err
			}
			usr.Email = email
		}
	}
	if input.RoleID != nil && *input.RoleID != usr.RoleID {
		role, err := s.getRole(ctx, *input.RoleID)
		if err != nil {
			return user.User{}, err
		}
		usr.RoleID = role.ID
		usr.Role = role
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return user.User{}, err
		}
		usr.Password = hashed
	}

	if err := s.Repos.User.SaveUser(ctx, &usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}
	recordAudit(ctx, s.Repos, actor, "update", "user", fmt.Sprintf("u_id=%d", usr.ID), before, usr, "")
	return usr, nil
}

func (s *UserService) RemoveUser(ctx context.Context, actor Actor, id uint) error {
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}
	usr, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.User.DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrUserNotFound
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrUserInUse
		}
		return err
	}
	recordAudit(ctx, s.Repos, actor, "delete", "user", fmt.Sprintf("u_id=%d", id), usr, nil, "")
	return nil
}

func (s *UserService) getUser(ctx context.Context, id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	return usr, err
}

func (s *UserService) getRole(ctx context.Context, id uint) (user.Role, error) {
	role, err := s.Repos.User.GetRoleByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.Role{}, ErrRoleNotFound
	}
	return role, err
}

// ensureEmailFree reports ErrEmailTaken when email belongs to a user other than selfID.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, selfID uint) error {
	existing, err := s.Repos.User.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return ErrEmailTaken
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
