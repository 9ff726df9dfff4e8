package main

import (
	"log/slog"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config/db"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, reference rows and the bootstrap admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadConfig()
			logger.Init(config.LogLevel, config.LogFormat)

			if err := db.Init(config.DSN()); err != nil {
				return err
			}
			return migrate(db.DB)
		},
	}
}

func migrate(gdb *gorm.DB) error {
	if err := db.Migrate(gdb); err != nil {
		return err
	}
	created, err := db.BootstrapAdmin(gdb, config.AdminEmail, config.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		slog.Info("bootstrap admin created", "email", config.AdminEmail)
	}
	slog.Info("database migrated")
	return nil
}
