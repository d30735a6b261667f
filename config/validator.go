package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
)

// Validator 配置验证器
type Validator struct {
	validate *validator.Validate
}

// NewValidator 创建配置验证器
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateAppConfig 按 struct tag 验证配置
func (v *Validator) ValidateAppConfig(config *AppConfig) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}
	if err := v.validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (v *Validator) validateConfigFilePath(env string, path string) error {
	if path == "" {
		return errors.New("config file path cannot be empty")
	}
	if len(path) > 255 {
		return errors.New("config file path is too long")
	}

	// 验证config file 存在
	if !fileExists(path) {
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := v.validateEnv(env); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateEnv(env string) error {
	switch env {
	case consts.ENV_PRODUCTION, consts.ENV_DEVELOPMENT, consts.ENV_TEST:
		return nil
	}
	return fmt.Errorf("running environment is not valid: %s", env)
}
