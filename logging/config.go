package logging

import "time"

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level        string        `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn warning error fatal DEBUG INFO WARN WARNING ERROR FATAL"`
	Format       string        `yaml:"format" json:"format" validate:"omitempty,oneof=json console"`
	Output       string        `yaml:"output" json:"output"`
	FileConfig   *FileConfig   `yaml:"file_config,omitempty" json:"file_config,omitempty"`
	RotateConfig *RotateConfig `yaml:"rotate_config,omitempty" json:"rotate_config,omitempty"`
}

// FileConfig 文件输出配置
type FileConfig struct {
	Dir      string `yaml:"dir" json:"dir"`           // 日志文件目录
	Filename string `yaml:"filename" json:"filename"` // 日志文件名前缀，如 "app_name"
}

// RotateConfig 日志轮转配置, 由 lumberjack 执行
type RotateConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled"`
	MaxSize    int           `yaml:"max_size" json:"max_size" validate:"gte=0"`       // MB, 0 表示默认 100
	MaxAge     time.Duration `yaml:"max_age" json:"max_age" validate:"gte=0"`         // 日志保留时间
	MaxBackups int           `yaml:"max_backups" json:"max_backups" validate:"gte=0"` // 0 表示不限制
	Compress   bool          `yaml:"compress" json:"compress"`
}
