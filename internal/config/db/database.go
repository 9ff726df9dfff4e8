package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/audit"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/comment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/equipment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/notification"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/project"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/ticket"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table managed by AutoMigrate, parents first.
var Models = []any{
	&user.Role{},
	&user.User{},
	&project.Project{},
	&equipment.Category{},
	&equipment.Brand{},
	&equipment.Equipment{},
	&ticket.Status{},
	&ticket.Ticket{},
	&ticket.Attachment{},
	&comment.Comment{},
	&notification.Notification{},
	&audit.AuditLog{},
}

// Config is shared by every gorm.Open in the repo so dialects behave the same.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return gdb, nil
}

// Init opens the global connection.
func Init(dsn string) error {
	gdb, err := Open(dsn)
	if err != nil {
		return err
	}
	DB = gdb
	slog.Info("database connected")
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates or updates tables and the reference rows the API depends on.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return EnsureReferenceData(gdb)
}

func EnsureReferenceData(gdb *gorm.DB) error {
	for _, name := range user.AllRoles {
		if err := gdb.Where(user.Role{Name: name}).FirstOrCreate(&user.Role{}).Error; err != nil {
			return fmt.Errorf("ensure role %s: %w", name, err)
		}
	}
	for _, name := range ticket.AllStatuses {
		if err := gdb.Where(ticket.Status{Name: name}).FirstOrCreate(&ticket.Status{}).Error; err != nil {
			return fmt.Errorf("ensure ticket status %s: %w", name, err)
		}
	}
	return nil
}

// BootstrapAdmin creates an ADMIN account when none exists yet. It is a no-op
// if password is empty or an admin is already present.
func BootstrapAdmin(gdb *gorm.DB, email, password string) (bool, error) {
	if password == "" {
		return false, nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var role user.Role
	if err := gdb.Where("name = ?", user.RoleAdmin).First(&role).Error; err != nil {
		return false, fmt.Errorf("load admin role: %w", err)
	}

	var count int64
	if err := gdb.Model(&user.User{}).Where("role_id = ?", role.ID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := user.User{
		FirstName: "System",
		LastName:  "Administrator",
		Email:     email,
		Password:  hashed,
		RoleID:    role.ID,
	}
	if err := gdb.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("bootstrap admin: email %s already used by a non-admin account", email)
		}
		return false, err
	}
	return true, nil
}
