package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
)

var ErrUnsupportedFormat = errors.New("unsupported config file format")

type format struct {
	name      string
	unmarshal func([]byte, any) error
}

// 按扩展名选择解析器
var formats = map[string]format{
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// Loader 配置加载器
type Loader struct {
	env        string
	configPath string
}

// NewLoader 创建配置加载器, env 与 configPath 为空时使用默认值
func NewLoader(env string, configPath string) *Loader {
	if env == "" {
		env = consts.ENV_DEVELOPMENT
	}
	if configPath == "" {
		configPath = consts.DEFAULT_CONFIG_PATH
	}
	return &Loader{env: env, configPath: configPath}
}

// LoadConfig 读取并解析配置文件, 不做校验
func (l *Loader) LoadConfig() (*AppConfig, error) {
	ext := strings.ToLower(filepath.Ext(l.configPath))
	f, ok := formats[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := f.unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", f.name, err)
	}
	if cfg.Env == "" {
		cfg.Env = l.env
	}
	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
