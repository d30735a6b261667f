package consts

const (
	ENV_PRODUCTION  = "production"
	ENV_DEVELOPMENT = "development"
	ENV_TEST        = "test"

	DEFAULT_CONFIG_PATH = "config.yaml"

	KEY_TraceID = "trace_id"
)

const (
	DIALECT_POSTGRES = "postgres"
	DIALECT_MYSQL    = "mysql"
)

// DEFAULT_MAX_LIMIT is the page size cap used when an entity declares none.
const DEFAULT_MAX_LIMIT = 100
