package config

import "github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/query"

type ConfigManager struct {
	configLoader *Loader
	validator    *Validator
	appConfig    *AppConfig
}

func NewConfigManager(env string, configPath string) *ConfigManager {
	return &ConfigManager{
		configLoader: NewLoader(env, configPath),
		validator:    NewValidator(),
	}
}

func (cf *ConfigManager) GetConfig() *AppConfig {
	return cf.appConfig
}

// LoadConfig 校验路径, 加载并验证配置
func (cf *ConfigManager) LoadConfig() error {
	if err := cf.validator.validateConfigFilePath(cf.configLoader.env, cf.configLoader.configPath); err != nil {
		return err
	}

	config, err := cf.configLoader.LoadConfig()
	if err != nil {
		return err
	}

	if err = cf.validator.ValidateAppConfig(config); err != nil {
		return err
	}

	cf.appConfig = config
	return nil
}

// Policy 返回实体的分页策略, 配置未加载时使用默认值
func (cf *ConfigManager) Policy(entity string) query.Policy {
	if cf == nil || cf.appConfig == nil {
		return (*PaginationConfig)(nil).Policy(entity)
	}
	return cf.appConfig.Pagination.Policy(entity)
}
