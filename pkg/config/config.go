package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the app recognizes.
	EnvPrefix = "KASIRPAY"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Config is the process-wide immutable configuration, loaded once at startup
// and passed explicitly to every component that needs it.
type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	GCP           GCPConfig
	GCS           GCSConfig
	Upload        UploadConfig
	Mail          MailConfig
	Midtrans      MidtransConfig
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KASIRPAY_APP_ENV" required:"true"`
	Port         string `envconfig:"KASIRPAY_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"KASIRPAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KASIRPAY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KASIRPAY_DB_DSN" required:"true"`
	Driver string `envconfig:"KASIRPAY_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"KASIRPAY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KASIRPAY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KASIRPAY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KASIRPAY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KASIRPAY_REDIS_URL"`
	Address      string        `envconfig:"KASIRPAY_REDIS_ADDR"`
	Password     string        `envconfig:"KASIRPAY_REDIS_PASSWORD"`
	DB           int           `envconfig:"KASIRPAY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KASIRPAY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KASIRPAY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KASIRPAY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KASIRPAY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KASIRPAY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"KASIRPAY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KASIRPAY_JWT_ISSUER" default:"kasirpay"`
	ExpirationMinutes int    `envconfig:"KASIRPAY_JWT_EXPIRATION_MINUTES" default:"120"`
}

// Expiration returns the access token validity window.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KASIRPAY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KASIRPAY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KASIRPAY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KASIRPAY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KASIRPAY_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"KASIRPAY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"KASIRPAY_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"KASIRPAY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"KASIRPAY_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"KASIRPAY_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"KASIRPAY_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KASIRPAY_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"KASIRPAY_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"KASIRPAY_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"KASIRPAY_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName string `envconfig:"KASIRPAY_GCS_BUCKET_NAME" required:"true"`
}

type UploadConfig struct {
	MaxUploadMB int `envconfig:"KASIRPAY_MAX_UPLOAD_MB" default:"2"`
}

type MailConfig struct {
	Host     string `envconfig:"KASIRPAY_MAIL_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"KASIRPAY_MAIL_PORT" default:"587"`
	Username string `envconfig:"KASIRPAY_MAIL_USER" required:"true"`
	Password string `envconfig:"KASIRPAY_MAIL_PASSWORD" required:"true"`
	From     string `envconfig:"KASIRPAY_MAIL_FROM"`
}

// Sender returns the From address, defaulting to the SMTP username.
func (m MailConfig) Sender() string {
	if strings.TrimSpace(m.From) != "" {
		return m.From
	}
	return m.Username
}

type MidtransConfig struct {
	ServerKey    string `envconfig:"KASIRPAY_MIDTRANS_SERVER_KEY" required:"true"`
	IsProduction bool   `envconfig:"KASIRPAY_MIDTRANS_IS_PRODUCTION" default:"false"`
	FrontendURL  string `envconfig:"KASIRPAY_FRONTEND_URL" default:"http://localhost:3000"`
}
