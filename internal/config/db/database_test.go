package db_test

import (
	"context"
	"testing"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/config/db"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/testutils"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapAdmin(t *testing.T) {
	gdb := testutils.NewSQLiteDB(t)
	users := repository.NewUserRepo(gdb)
	ctx := context.Background()

	created, err := db.BootstrapAdmin(gdb, "admin@example.com", "")
	require.NoError(t, err)
	assert.False(t, created, "no password means no bootstrap")

	created, err = db.BootstrapAdmin(gdb, "  Admin@Corp.com ", "secret123")
	require.NoError(t, err)
	require.True(t, created)

	// login lowercases the address, so the stored one must be lowercase too
	admin, err := users.GetUserByEmail(ctx, "Admin@Corp.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@corp.com", admin.Email)
	assert.Equal(t, user.RoleAdmin, admin.Role.Name)
	assert.True(t, utils.CheckPassword(admin.Password, "secret123"))

	created, err = db.BootstrapAdmin(gdb, "other@corp.com", "secret123")
	require.NoError(t, err)
	assert.False(t, created, "an admin already exists")
}
