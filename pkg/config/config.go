package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "smlogi"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SMLOGI_DB_DSN"
	EnvDBHost = "SMLOGI_DB_HOST"
	EnvDBUser = "SMLOGI_DB_USER"
	EnvDBName = "SMLOGI_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Evidence   EvidenceConfig
	Settlement SettlementConfig
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
	Env          string `envconfig:"SMLOGI_APP_ENV" required:"true"`
	Port         string `envconfig:"SMLOGI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SMLOGI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SMLOGI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SMLOGI_DB_DSN"`
	Driver string `envconfig:"SMLOGI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SMLOGI_DB_HOST"`
	LegacyPort     int    `envconfig:"SMLOGI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SMLOGI_DB_USER"`
	LegacyPassword string `envconfig:"SMLOGI_DB_PASSWORD"`
	LegacyName     string `envconfig:"SMLOGI_DB_NAME"`
	LegacySSLMode  string `envconfig:"SMLOGI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SMLOGI_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"SMLOGI_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SMLOGI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SMLOGI_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"SMLOGI_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SMLOGI_REDIS_URL"`
	Address      string        `envconfig:"SMLOGI_REDIS_ADDR"`
	Password     string        `envconfig:"SMLOGI_REDIS_PASSWORD"`
	DB           int           `envconfig:"SMLOGI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SMLOGI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SMLOGI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SMLOGI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SMLOGI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SMLOGI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// EvidenceConfig controls where waybill and tax-invoice images land on disk
// and the public path prefix stored on order rows.
type EvidenceConfig struct {
	Dir          string `envconfig:"SMLOGI_EVIDENCE_DIR" default:"./uploads/evidence"`
	PublicPrefix string `envconfig:"SMLOGI_EVIDENCE_PUBLIC_PREFIX" default:"/uploads/evidence/"`
	MaxUploadMB  int    `envconfig:"SMLOGI_EVIDENCE_MAX_UPLOAD_MB" default:"20"`
}

type SettlementConfig struct {
	OverdueGraceDays int `envconfig:"SMLOGI_SETTLEMENT_OVERDUE_GRACE_DAYS" default:"30"`
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
