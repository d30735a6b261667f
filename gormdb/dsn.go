package gormdb

import (
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/grand-thief-cash/chaos/app/infra/go/queryfilter/consts"
)

// buildDSN builds DSN from datasource pieces if DSN not provided.
func buildDSN(cfg *Config) (string, error) {
	if strings.TrimSpace(cfg.DSN) != "" {
		return cfg.DSN, nil
	}
	if cfg.Host == "" || cfg.User == "" || cfg.Database == "" {
		return "", errors.New("host, user, database required when dsn not provided")
	}
	switch strings.ToLower(cfg.Dialect) {
	case consts.DIALECT_POSTGRES:
		return postgresDSN(cfg), nil
	case consts.DIALECT_MYSQL:
		return mysqlDSN(cfg), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, cfg.Dialect)
	}
}

// postgresDSN renders a libpq keyword/value DSN. Params are sorted so the
// result is stable.
func postgresDSN(cfg *Config) string {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	parts := []string{
		"host=" + cfg.Host,
		"user=" + cfg.User,
	}
	if cfg.Password != "" {
		parts = append(parts, "password="+cfg.Password)
	}
	parts = append(parts, "dbname="+cfg.Database, "port="+strconv.Itoa(port))

	keys := make([]string, 0, len(cfg.Params))
	for k := range cfg.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+cfg.Params[k])
	}
	return strings.Join(parts, " ")
}

func mysqlDSN(cfg *Config) string {
	port := cfg.Port
	if port == 0 {
		port = 3306
	}
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	for k, v := range cfg.Params {
		mc.Params[k] = v
	}
	return mc.FormatDSN()
}
