package logging

import (
	"fmt"
	"strings"
)

const defaultMaxSizeMB = 100

// New 根据配置创建 zap 日志记录器, cfg 为 nil 时使用默认配置
func New(cfg *LoggingConfig) (*ZapLogger, error) {
	if cfg == nil {
		cfg = &LoggingConfig{}
	}
	c := *cfg
	setDefaults(&c)
	if err := validate(&c); err != nil {
		return nil, err
	}
	return newZapLogger(&c)
}

// setDefaults 设置默认配置值
func setDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
	if strings.EqualFold(cfg.Output, "file") && cfg.FileConfig == nil {
		cfg.FileConfig = &FileConfig{Dir: "./logs", Filename: "app"}
	}
	if cfg.RotateConfig != nil && cfg.RotateConfig.Enabled && cfg.RotateConfig.MaxSize == 0 {
		rc := *cfg.RotateConfig
		rc.MaxSize = defaultMaxSizeMB
		cfg.RotateConfig = &rc
	}
}

// validate performs explicit validation rules without applying hidden defaults.
func validate(cfg *LoggingConfig) error {
	switch strings.ToLower(cfg.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Format)
	}
	if cfg.RotateConfig != nil && cfg.RotateConfig.Enabled {
		if !strings.EqualFold(cfg.Output, "file") {
			return fmt.Errorf("logging.rotate_config requires output=file")
		}
		if cfg.RotateConfig.MaxAge < 0 {
			return fmt.Errorf("logging.rotate_config.max_age must be >= 0")
		}
		if cfg.RotateConfig.MaxSize < 0 || cfg.RotateConfig.MaxBackups < 0 {
			return fmt.Errorf("logging.rotate_config.max_size and max_backups must be >= 0")
		}
	}
	return nil
}
