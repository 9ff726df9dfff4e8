package testutils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config/db"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB returns a migrated in-memory database private to the test.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	return openSQLite(t, ":memory:")
}

// NewSQLiteDBWithForeignKeys is NewSQLiteDB with foreign key enforcement on,
// so deletes behave the way they do on Postgres.
func NewSQLiteDBWithForeignKeys(t *testing.T) *gorm.DB {
	return openSQLite(t, ":memory:?_pragma=foreign_keys(1)")
}

func openSQLite(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(dsn), db.Config())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func RoleID(t *testing.T, gdb *gorm.DB, name user.RoleName) uint {
	t.Helper()
	var r user.Role
	require.NoError(t, gdb.Where("name = ?", name).First(&r).Error)
	return r.ID
}

func StatusID(t *testing.T, gdb *gorm.DB, name ticket.StatusName) uint {
	t.Helper()
	var s ticket.Status
	require.NoError(t, gdb.Where("name = ?", name).First(&s).Error)
	return s.ID
}

func CreateUser(t *testing.T, gdb *gorm.DB, role user.RoleName, email string) user.User {
	t.Helper()
	u := user.User{
		FirstName: "Test",
		LastName:  string(role),
		Email:     email,
		Password:  "x",
		RoleID:    RoleID(t, gdb, role),
	}
	require.NoError(t, gdb.Omit("Role").Create(&u).Error)
	return u
}

func CreateProject(t *testing.T, gdb *gorm.DB, name string, typ project.Type, client *user.User, managers, technicians []user.User) project.Project {
	t.Helper()
	p := project.Project{
		Name:        name,
		ProjectType: typ,
		Managers:    managers,
		Technicians: technicians,
		CreatedByID: 1,
	}
	if client != nil {
		p.ClientID = &client.ID
	}
	require.NoError(t, gdb.Omit("Client", "Managers.*", "Technicians.*").Create(&p).Error)
	return p
}
