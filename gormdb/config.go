package gormdb

import "time"

// Config describes one gorm handle. DSN wins over the individual
// connection fields when both are set.
type Config struct {
	Dialect string `yaml:"dialect" json:"dialect" validate:"required,oneof=postgres mysql"`
	DSN     string `yaml:"dsn" json:"dsn"`

	Host     string            `yaml:"host" json:"host"`
	Port     int               `yaml:"port" json:"port" validate:"gte=0,lte=65535"`
	User     string            `yaml:"user" json:"user"`
	Password string            `yaml:"password" json:"password"`
	Database string            `yaml:"database" json:"database"`
	Params   map[string]string `yaml:"params" json:"params"`

	LogLevel      string        `yaml:"log_level" json:"log_level"`           // silent|error|warn|info|debug
	SlowThreshold time.Duration `yaml:"slow_threshold" json:"slow_threshold"` // e.g. 200ms

	// DryRun builds statements without a server: no ping, no version probe,
	// nothing is executed.
	DryRun bool `yaml:"dry_run" json:"dry_run"`
}
