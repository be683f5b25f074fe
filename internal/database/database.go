package database

import (
	"fmt"
	"time"

	"ensemble-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Team{},
			&models.TeamRegistrationRequest{},
			&models.Application{},
			&models.SubApplication{},
			&models.Turnover{},
			&models.TurnoverEntry{},
			&models.TurnoverDraft{},
			&models.TurnoverSnapshot{},
			&models.LinkCategory{},
			&models.Link{},
			&models.LinkTag{},
			&models.LinkAccessLog{},
			&models.ToolSettingsSchema{},
			&models.GlobalToolSettings{},
			&models.TeamToolSettings{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		if err := createScopedUniqueIndexes(db); err != nil {
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	return db, nil
}

// createScopedUniqueIndexes creates the draft and snapshot unique indexes.
// These use NULLS NOT DISTINCT (Postgres 15+) because application_id and
// sub_application_id are nullable scope columns: without it two drafts for
// the same team-wide scope would both insert. GORM's migrator cannot express
// this, so the indexes are created directly.
func createScopedUniqueIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_turnover_drafts_scope
			ON turnover_drafts (team_id, application_id, sub_application_id, status)
			NULLS NOT DISTINCT`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_turnover_snapshots_scope_date
			ON turnover_snapshots (team_id, application_id, sub_application_id, snapshot_date)
			NULLS NOT DISTINCT`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
