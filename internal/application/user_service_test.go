package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *repoMocks) {
	m := setupRepoMocks(t)
	return NewUserService(m.repos), m
}

func hashed(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

var (
	adminActor  = Actor{ID: 1, Role: user.RoleAdmin}
	staffActor  = Actor{ID: 2, Role: user.RoleStaff}
	techActor   = Actor{ID: 3, Role: user.RoleTechnician}
	clientActor = Actor{ID: 4, Role: user.RoleClient}
)

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	usr := user.User{ID: 1, Email: "bob@test.com", Password: hashed(t, "secret1"), Role: user.Role{Name: user.RoleStaff}}
	m.user.EXPECT().GetUserByEmail(ctx, "bob@test.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login(ctx, "bob@test.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	usr := user.User{ID: 1, Email: "bob@test.com", Password: hashed(t, "secret1")}
	m.user.EXPECT().GetUserByEmail(ctx, "bob@test.com").Return(usr, nil)

	_, token, err := svc.Login(ctx, "bob@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByEmail(ctx, "nobody@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(ctx, "nobody@test.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepoError(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByEmail(ctx, "bob@test.com").Return(user.User{}, errors.New("db down"))

	_, _, err := svc.Login(ctx, "bob@test.com", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- CreateUser ---------------------
func TestCreateUser_Success(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	m.user.EXPECT().GetRoleByID(ctx, uint(2)).Return(user.Role{ID: 2, Name: user.RoleStaff}, nil)
	m.user.EXPECT().GetUserByEmail(ctx, "alice@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.Equal(t, "alice@test.com", u.Email)
		assert.NotEqual(t, "secret1", u.Password)
		u.ID = 10
		return nil
	})
	m.user.EXPECT().GetUserByID(ctx, uint(10)).Return(user.User{ID: 10, Email: "alice@test.com"}, nil)

	created, err := svc.CreateUser(ctx, adminActor, user.CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "  Alice@Test.com ",
		Password:  "secret1",
		RoleID:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), created.ID)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	m.user.EXPECT().GetRoleByID(ctx, uint(2)).Return(user.Role{ID: 2}, nil)
	m.user.EXPECT().GetUserByEmail(ctx, "alice@test.com").Return(user.User{ID: 5}, nil)

	_, err := svc.CreateUser(ctx, adminActor, user.CreateUserInput{Email: "alice@test.com", Password: "secret1", RoleID: 2})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateUser_DuplicateOnInsert(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	m.user.EXPECT().GetRoleByID(ctx, uint(2)).Return(user.Role{ID: 2}, nil)
	m.user.EXPECT().GetUserByEmail(ctx, "alice@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().CreateUser(ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateUser(ctx, adminActor, user.CreateUserInput{Email: "alice@test.com", Password: "secret1", RoleID: 2})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetRoleByID(ctx, uint(99)).Return(user.Role{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateUser(ctx, adminActor, user.CreateUserInput{Email: "a@test.com", Password: "secret1", RoleID: 99})
	assert.ErrorIs(t, err, ErrRoleNotFound)
	assert.ErrorIs(t, err, ErrValidation)
}

// --------------------- GetUser ---------------------
func TestGetUser_SelfAllowed(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByID(ctx, uint(3)).Return(user.User{ID: 3}, nil)

	u, err := svc.GetUser(ctx, techActor, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), u.ID)
}

func TestGetUser_OtherForbidden(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.GetUser(context.Background(), clientActor, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByID(ctx, uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.GetUser(ctx, staffActor, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_NonAdminCannotChangeRole(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateUser(context.Background(), techActor, techActor.ID, user.UpdateUserInput{RoleID: ptr(uint(1))})
	assert.ErrorIs(t, err, ErrRoleChange)
}

func TestUpdateUser_NonAdminCannotEditOthers(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.UpdateUser(context.Background(), staffActor, 9, user.UpdateUserInput{FirstName: ptr("x")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateUser_AdminChangesRole(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	m.user.EXPECT().GetUserByID(ctx, uint(9)).Return(user.User{ID: 9, RoleID: 3}, nil)
	m.user.EXPECT().GetRoleByID(ctx, uint(2)).Return(user.Role{ID: 2, Name: user.RoleStaff}, nil)
	m.user.EXPECT().SaveUser(ctx, gomock.Any()).Return(nil)

	u, err := svc.UpdateUser(ctx, adminActor, 9, user.UpdateUserInput{RoleID: ptr(uint(2))})
	require.NoError(t, err)
	assert.Equal(t, uint(2), u.RoleID)
	assert.Equal(t, user.RoleStaff, u.Role.Name)
}

func TestUpdateUser_SelfEmailTaken(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()

	m.user.EXPECT().GetUserByID(ctx, uint(3)).Return(user.User{ID: 3, Email: "me@test.com"}, nil)
	m.user.EXPECT().GetUserByEmail(ctx, "taken@test.com").Return(user.User{ID: 8}, nil)

	_, err := svc.UpdateUser(ctx, techActor, 3, user.UpdateUserInput{Email: ptr("taken@test.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// --------------------- ChangePassword ---------------------
func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByID(ctx, uint(3)).Return(user.User{ID: 3, Password: hashed(t, "oldpass")}, nil)

	err := svc.ChangePassword(ctx, techActor, user.ChangePasswordInput{OldPassword: "nope", NewPassword: "newpass"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestChangePassword_Success(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByID(ctx, uint(3)).Return(user.User{ID: 3, Password: hashed(t, "oldpass")}, nil)
	m.user.EXPECT().SaveUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass")))
		return nil
	})

	err := svc.ChangePassword(ctx, techActor, user.ChangePasswordInput{OldPassword: "oldpass", NewPassword: "newpass"})
	assert.NoError(t, err)
}

// --------------------- RemoveUser ---------------------
func TestRemoveUser_Self(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	err := svc.RemoveUser(context.Background(), adminActor, adminActor.ID)
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)
}

func TestRemoveUser_Success(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByID(ctx, uint(7)).Return(user.User{ID: 7}, nil)
	m.user.EXPECT().DeleteUser(ctx, uint(7)).Return(nil)

	assert.NoError(t, svc.RemoveUser(ctx, adminActor, 7))
}

func TestRemoveUser_StillReferenced(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	m.user.EXPECT().GetUserByID(ctx, uint(7)).Return(user.User{ID: 7}, nil)
	m.user.EXPECT().DeleteUser(ctx, uint(7)).Return(fmt.Errorf("user 7 referenced by project_managers.user_id: %w", gorm.ErrForeignKeyViolated))

	err := svc.RemoveUser(ctx, adminActor, 7)
	assert.ErrorIs(t, err, ErrUserInUse)
	assert.ErrorIs(t, err, ErrConflict)
}
