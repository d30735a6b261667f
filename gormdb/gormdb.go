// Package gormdb opens gorm handles for the supported dialects. Handles
// opened with DryRun never touch the network and are used to preview the
// SQL a filtered query renders to.
package gormdb

import (
	"errors"
	"fmt"
	"strings"

	gormmysql "gorm.io/driver/mysql"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/logging"
)

var ErrUnknownDialect = errors.New("unknown dialect")

// Open builds a *gorm.DB for cfg.
func Open(cfg *Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("gormdb config is nil")
	}
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logging.NewGormLogger(cfg.LogLevel, cfg.SlowThreshold),
		DryRun:                 cfg.DryRun,
		DisableAutomaticPing:   cfg.DryRun,
		SkipDefaultTransaction: cfg.DryRun,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm %s db failed: %w", cfg.Dialect, err)
	}
	return db, nil
}

func newDialector(cfg *Config) (gorm.Dialector, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("build dsn failed: %w", err)
	}
	switch strings.ToLower(cfg.Dialect) {
	case consts.DIALECT_POSTGRES:
		return gormpg.New(gormpg.Config{DSN: dsn}), nil
	case consts.DIALECT_MYSQL:
		return gormmysql.New(gormmysql.Config{DSN: dsn, SkipInitializeWithVersion: cfg.DryRun}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, cfg.Dialect)
	}
}

// Preview opens a DryRun handle for dialect with placeholder credentials.
func Preview(dialect string) (*gorm.DB, error) {
	return Open(&Config{
		Dialect:  dialect,
		Host:     "localhost",
		User:     "preview",
		Database: "preview",
		Params:   previewParams(dialect),
		LogLevel: "silent",
		DryRun:   true,
	})
}

func previewParams(dialect string) map[string]string {
	if strings.EqualFold(dialect, consts.DIALECT_POSTGRES) {
		return map[string]string{"sslmode": "disable"}
	}
	return nil
}

// Statement returns the SQL fn builds with dialect placeholders, and its arguments.
func Statement(db *gorm.DB, fn func(tx *gorm.DB) *gorm.DB) (string, []any, error) {
	tx := fn(db.Session(&gorm.Session{DryRun: true, SkipDefaultTransaction: true}))
	if tx.Error != nil {
		return "", nil, tx.Error
	}
	return tx.Statement.SQL.String(), tx.Statement.Vars, nil
}
