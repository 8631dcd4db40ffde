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
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Stream        StreamConfig
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
	Env          string `envconfig:"STREAMHAUS_APP_ENV" required:"true"`
	Port         string `envconfig:"STREAMHAUS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STREAMHAUS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STREAMHAUS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STREAMHAUS_DB_DSN"`
	Driver string `envconfig:"STREAMHAUS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STREAMHAUS_DB_HOST"`
	LegacyPort     int    `envconfig:"STREAMHAUS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STREAMHAUS_DB_USER"`
	LegacyPassword string `envconfig:"STREAMHAUS_DB_PASSWORD"`
	LegacyName     string `envconfig:"STREAMHAUS_DB_NAME"`
	LegacySSLMode  string `envconfig:"STREAMHAUS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STREAMHAUS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STREAMHAUS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STREAMHAUS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STREAMHAUS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STREAMHAUS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STREAMHAUS_REDIS_ADDR"`
	Password     string        `envconfig:"STREAMHAUS_REDIS_PASSWORD"`
	DB           int           `envconfig:"STREAMHAUS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STREAMHAUS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STREAMHAUS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STREAMHAUS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STREAMHAUS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STREAMHAUS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"STREAMHAUS_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"STREAMHAUS_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"STREAMHAUS_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"STREAMHAUS_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"STREAMHAUS_BCRYPT_COST" default:"12"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"STREAMHAUS_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"STREAMHAUS_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"STREAMHAUS_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STREAMHAUS_AUTO_MIGRATE" default:"false"`
}

// StreamConfig seeds the settings row when it is lazily created.
type StreamConfig struct {
	DefaultLiveStreamURL string `envconfig:"STREAMHAUS_DEFAULT_LIVE_STREAM_URL"`
	DefaultVodBaseURL    string `envconfig:"STREAMHAUS_DEFAULT_VOD_BASE_URL"`
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
