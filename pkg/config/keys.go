package config

// EnvPrefix is passed to envconfig; the struct tags already carry the full
// variable names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "RENTALKE_APP_ENV"
	EnvPort     = "RENTALKE_APP_PORT"
	EnvDBDSN    = "RENTALKE_DB_DSN"
	EnvDBHost   = "RENTALKE_DB_HOST"
	EnvDBUser   = "RENTALKE_DB_USER"
	EnvDBName   = "RENTALKE_DB_NAME"
	EnvRedisURL = "RENTALKE_REDIS_URL"

	EnvJWTSecret              = "RENTALKE_JWT_SECRET"
	EnvJWTIssuer              = "RENTALKE_JWT_ISSUER"
	EnvJWTExpMins             = "RENTALKE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "RENTALKE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
