package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Site          SiteConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Admin         AdminConfig
	AuthRateLimit AuthRateLimitConfig
	Listings      ListingsConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RENTALKE_APP_ENV" required:"true"`
	Port         string `envconfig:"RENTALKE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RENTALKE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RENTALKE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SiteConfig carries the public-facing identity used by the sitemap and
// contact links.
type SiteConfig struct {
	BaseURL        string `envconfig:"RENTALKE_SITE_BASE_URL" default:"https://rentalke.vercel.app"`
	ContactPhone   string `envconfig:"RENTALKE_SITE_CONTACT_PHONE" default:"+254115588218"`
	AllowedOrigins string `envconfig:"RENTALKE_SITE_ALLOWED_ORIGINS" default:"*"`
}

// Origins splits the comma-separated allowed origins list.
func (s SiteConfig) Origins() []string {
	parts := strings.Split(s.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

type DBConfig struct {
	DSN    string `envconfig:"RENTALKE_DB_DSN"`
	Driver string `envconfig:"RENTALKE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RENTALKE_DB_HOST"`
	LegacyPort     int    `envconfig:"RENTALKE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RENTALKE_DB_USER"`
	LegacyPassword string `envconfig:"RENTALKE_DB_PASSWORD"`
	LegacyName     string `envconfig:"RENTALKE_DB_NAME"`
	LegacySSLMode  string `envconfig:"RENTALKE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RENTALKE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RENTALKE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RENTALKE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RENTALKE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RENTALKE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"RENTALKE_REDIS_ADDR"`
	Password     string        `envconfig:"RENTALKE_REDIS_PASSWORD"`
	DB           int           `envconfig:"RENTALKE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RENTALKE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RENTALKE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RENTALKE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RENTALKE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RENTALKE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"RENTALKE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"RENTALKE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"RENTALKE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"RENTALKE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RENTALKE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RENTALKE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RENTALKE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RENTALKE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RENTALKE_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig identifies the operator account that is seeded on boot when
// no admin row exists yet.
type AdminConfig struct {
	Email        string `envconfig:"RENTALKE_ADMIN_EMAIL"`
	PasswordHash string `envconfig:"RENTALKE_ADMIN_PASSWORD_HASH"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"RENTALKE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"RENTALKE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"RENTALKE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// ListingsConfig tunes the unfiltered listing cache.
type ListingsConfig struct {
	CacheTTL time.Duration `envconfig:"RENTALKE_LISTINGS_CACHE_TTL" default:"5m"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RENTALKE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RENTALKE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
