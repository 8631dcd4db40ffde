package config

// EnvPrefix is the envconfig prefix applied during Load. All variables also
// carry explicit STREAMHAUS_ tags, so the prefix mostly documents intent.
const EnvPrefix = "streamhaus"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv = "STREAMHAUS_APP_ENV"
	EnvDBDSN  = "STREAMHAUS_DB_DSN"
	EnvDBHost = "STREAMHAUS_DB_HOST"
	EnvDBUser = "STREAMHAUS_DB_USER"
	EnvDBName = "STREAMHAUS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
