package config

import (
	"slices"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/gormdb"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/logging"
	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/query"
)

// AppConfig 应用程序配置结构
type AppConfig struct {
	Env        string                 `yaml:"env" json:"env" validate:"omitempty,oneof=production development test"`
	Logging    *logging.LoggingConfig `yaml:"logging" json:"logging"`
	Database   *gormdb.Config         `yaml:"database" json:"database"`
	Pagination *PaginationConfig      `yaml:"pagination" json:"pagination"`
}

// PaginationConfig 分页配置, entities 以实体名为 key
type PaginationConfig struct {
	DefaultMaxLimit int                          `yaml:"default_max_limit" json:"default_max_limit" validate:"gte=0"`
	Entities        map[string]*EntityPagination `yaml:"entities" json:"entities" validate:"dive"`
}

// EntityPagination 单个实体的分页策略
type EntityPagination struct {
	// 0 表示使用 default_max_limit
	MaxLimit int `yaml:"max_limit" json:"max_limit" validate:"gte=0"`
	// 允许排序的列, 不在列表中的 sort 参数会被忽略
	SortableFields []string `yaml:"sortable_fields" json:"sortable_fields" validate:"dive,required"`
}

// Policy 返回实体的分页策略. 未配置的实体不允许排序,
// max limit 依次回退到 default_max_limit 和 query.DefaultMaxLimit。
func (p *PaginationConfig) Policy(entity string) query.Policy {
	policy := query.Policy{Max: query.DefaultMaxLimit}
	if p == nil {
		return policy
	}
	if p.DefaultMaxLimit > 0 {
		policy.Max = p.DefaultMaxLimit
	}
	e := p.Entities[entity]
	if e == nil {
		return policy
	}
	if e.MaxLimit > 0 {
		policy.Max = e.MaxLimit
	}
	policy.Fields = slices.Clone(e.SortableFields)
	return policy
}
