package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/gormdb"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/logging"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/query"
)

const sampleYAML = `
env: test
logging:
  level: debug
  format: console
  output: stdout
database:
  dialect: postgres
  host: db
  port: 5432
  user: app
  database: shop
  log_level: warn
  slow_threshold: 250ms
  dry_run: true
pagination:
  default_max_limit: 50
  entities:
    users:
      max_limit: 20
      sortable_fields: [name, age]
    orders:
      sortable_fields: [created_at]
`

const sampleJSON = `{
  "logging": {"level": "info", "format": "json", "output": "stderr"},
  "database": {"dialect": "mysql", "dsn": "app:secret@tcp(db:3306)/shop"},
  "pagination": {"entities": {"users": {"max_limit": 10, "sortable_fields": ["id"]}}}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := NewLoader("", writeFile(t, "app.yaml", sampleYAML)).LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, consts.ENV_TEST, cfg.Env)
	assert.Equal(t, &logging.LoggingConfig{Level: "debug", Format: "console", Output: "stdout"}, cfg.Logging)
	assert.Equal(t, &gormdb.Config{
		Dialect:       "postgres",
		Host:          "db",
		Port:          5432,
		User:          "app",
		Database:      "shop",
		LogLevel:      "warn",
		SlowThreshold: 250 * time.Millisecond,
		DryRun:        true,
	}, cfg.Database)
	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 50, cfg.Pagination.DefaultMaxLimit)
	assert.Equal(t, []string{"name", "age"}, cfg.Pagination.Entities["users"].SortableFields)

	require.NoError(t, NewValidator().ValidateAppConfig(cfg))
}

func TestLoadJSON(t *testing.T) {
	cfg, err := NewLoader(consts.ENV_PRODUCTION, writeFile(t, "app.json", sampleJSON)).LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, consts.ENV_PRODUCTION, cfg.Env)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "mysql", cfg.Database.Dialect)
	assert.Equal(t, query.Policy{Fields: []string{"id"}, Max: 10}, cfg.Pagination.Policy("users"))
	require.NoError(t, NewValidator().ValidateAppConfig(cfg))
}

func TestLoadErrors(t *testing.T) {
	_, err := NewLoader("", writeFile(t, "app.toml", "env = 'test'")).LoadConfig()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewLoader("", filepath.Join(t.TempDir(), "missing.yaml")).LoadConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewLoader("", writeFile(t, "bad.yaml", "pagination: [1, 2")).LoadConfig()
	assert.ErrorContains(t, err, "failed to parse YAML config")

	_, err = NewLoader("", writeFile(t, "bad.json", "{")).LoadConfig()
	assert.ErrorContains(t, err, "failed to parse JSON config")
}

func TestNewLoaderDefaults(t *testing.T) {
	l := NewLoader("", "")
	assert.Equal(t, consts.ENV_DEVELOPMENT, l.env)
	assert.Equal(t, consts.DEFAULT_CONFIG_PATH, l.configPath)
}

func TestPolicy(t *testing.T) {
	cfg := &PaginationConfig{
		DefaultMaxLimit: 50,
		Entities: map[string]*EntityPagination{
			"users":  {MaxLimit: 20, SortableFields: []string{"name", "age"}},
			"orders": {SortableFields: []string{"created_at"}},
			"nil":    nil,
		},
	}
	cases := []struct {
		name   string
		cfg    *PaginationConfig
		entity string
		want   query.Policy
	}{
		{"entity limit", cfg, "users", query.Policy{Fields: []string{"name", "age"}, Max: 20}},
		{"default limit", cfg, "orders", query.Policy{Fields: []string{"created_at"}, Max: 50}},
		{"unknown entity", cfg, "invoices", query.Policy{Max: 50}},
		{"nil entity", cfg, "nil", query.Policy{Max: 50}},
		{"no default", &PaginationConfig{}, "users", query.Policy{Max: query.DefaultMaxLimit}},
		{"nil config", nil, "users", query.Policy{Max: query.DefaultMaxLimit}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.cfg.Policy(c.entity))
		})
	}
}

func TestPolicyDoesNotAliasConfig(t *testing.T) {
	cfg := &PaginationConfig{Entities: map[string]*EntityPagination{"users": {SortableFields: []string{"name"}}}}
	p := cfg.Policy("users")
	p.Fields[0] = "password_hash"
	assert.Equal(t, []string{"name"}, cfg.Entities["users"].SortableFields)
}

func TestValidateAppConfig(t *testing.T) {
	cases := []struct {
		name  string
		cfg   *AppConfig
		field string
	}{
		{"bad env", &AppConfig{Env: "staging"}, "Env"},
		{"bad level", &AppConfig{Logging: &logging.LoggingConfig{Level: "loud"}}, "Level"},
		{"bad format", &AppConfig{Logging: &logging.LoggingConfig{Format: "xml"}}, "Format"},
		{"bad dialect", &AppConfig{Database: &gormdb.Config{Dialect: "sqlite"}}, "Dialect"},
		{"missing dialect", &AppConfig{Database: &gormdb.Config{}}, "Dialect"},
		{"negative default", &AppConfig{Pagination: &PaginationConfig{DefaultMaxLimit: -1}}, "DefaultMaxLimit"},
		{"negative entity limit", &AppConfig{Pagination: &PaginationConfig{
			Entities: map[string]*EntityPagination{"users": {MaxLimit: -5}},
		}}, "MaxLimit"},
		{"empty sortable field", &AppConfig{Pagination: &PaginationConfig{
			Entities: map[string]*EntityPagination{"users": {SortableFields: []string{"name", ""}}},
		}}, "SortableFields[1]"},
	}
	v := NewValidator()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := v.ValidateAppConfig(c.cfg)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, c.field, verrs[0].Field())
		})
	}

	assert.Error(t, v.ValidateAppConfig(nil))
	assert.NoError(t, v.ValidateAppConfig(&AppConfig{}))
}

func TestConfigManager(t *testing.T) {
	path := writeFile(t, "app.yaml", sampleYAML)

	cm := NewConfigManager(consts.ENV_TEST, path)
	assert.Equal(t, query.Policy{Max: query.DefaultMaxLimit}, cm.Policy("users"))

	require.NoError(t, cm.LoadConfig())
	require.NotNil(t, cm.GetConfig())
	assert.Equal(t, query.Policy{Fields: []string{"name", "age"}, Max: 20}, cm.Policy("users"))
	assert.Equal(t, query.Policy{Max: 50}, cm.Policy("invoices"))
}

func TestConfigManagerRejects(t *testing.T) {
	good := writeFile(t, "app.yaml", sampleYAML)
	invalid := writeFile(t, "invalid.yaml", "logging:\n  format: xml\n")
	cases := []struct {
		name string
		env  string
		path string
		want string
	}{
		{"missing file", consts.ENV_TEST, filepath.Join(t.TempDir(), "nope.yaml"), "does not exist"},
		{"long path", consts.ENV_TEST, strings.Repeat("a", 256) + ".yaml", "too long"},
		{"bad env", "staging", good, "not valid"},
		{"invalid content", consts.ENV_TEST, invalid, "invalid config"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cm := NewConfigManager(c.env, c.path)
			err := cm.LoadConfig()
			assert.ErrorContains(t, err, c.want)
			assert.Nil(t, cm.GetConfig())
		})
	}
}
