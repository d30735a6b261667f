// Package testutil holds DryRun database handles and models shared by tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/gormdb"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/logging"
)

// User maps to the "users" table.
type User struct {
	ID        uint
	Name      string
	Age       int
	Score     float64
	Birthday  time.Time
	CreatedAt time.Time
}

func Postgres(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gormdb.Preview(consts.DIALECT_POSTGRES)
	require.NoError(t, err)
	return db
}

func MySQL(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gormdb.Preview(consts.DIALECT_MYSQL)
	require.NoError(t, err)
	return db
}

// FindSQL renders a SELECT over users with scopes applied, arguments inlined.
func FindSQL(db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(scopes...).Find(&[]User{})
	})
}

// Statement renders a SELECT over users with placeholders and returns its arguments.
func Statement(t testing.TB, db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) (string, []any) {
	t.Helper()
	sql, vars, err := gormdb.Statement(db, func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(scopes...).Find(&[]User{})
	})
	require.NoError(t, err)
	return sql, vars
}

// ObserveLogs installs an observing global logger for the duration of the test.
func ObserveLogs(t testing.TB) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetGlobalLogger(logging.NewFromZap(zap.New(core)))
	t.Cleanup(logging.ResetGlobalLogger)
	return logs
}
