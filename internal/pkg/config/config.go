package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (Redis, SMTP, Twilio, Kafka, Stripe) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	App       AppConfig
	Leave     LeaveConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Notify    NotifyConfig
	SMTP      SMTPConfig
	Twilio    TwilioConfig
	Kafka     KafkaConfig
	Stripe    StripeConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Singapore"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type AppConfig struct {
	Name string `envconfig:"APP_NAME" default:"salon-backend"`
	// Zone used for branches created without one and for "today" in date defaults.
	TimeZone     string `envconfig:"APP_TIMEZONE" default:"Asia/Singapore"`
	HolidaysFile string `envconfig:"HOLIDAYS_FILE" default:""`
}

type LeaveConfig struct {
	DefaultPaidDays   int `envconfig:"LEAVE_DEFAULT_PAID_DAYS" default:"14"`
	DefaultUnpaidDays int `envconfig:"LEAVE_DEFAULT_UNPAID_DAYS" default:"30"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:""`
}

type RateLimitConfig struct {
	Enabled  bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Limit    int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	FailOpen bool          `envconfig:"RATE_LIMIT_FAIL_OPEN" default:"true"`
}

type NotifyConfig struct {
	DispatchSpec string        `envconfig:"NOTIFY_DISPATCH_SPEC" default:"@every 10s"`
	ReminderSpec string        `envconfig:"REMINDER_SPEC" default:"0 9 * * *"`
	BatchSize    int           `envconfig:"NOTIFY_BATCH_SIZE" default:"20"`
	MaxAttempts  int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	RetryBase    time.Duration `envconfig:"NOTIFY_RETRY_BASE" default:"30s"`
	// Lease is how long a claimed job stays hidden from other dispatchers while it is being sent.
	Lease time.Duration `envconfig:"NOTIFY_LEASE" default:"2m"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@salon.local"`
}

type TwilioConfig struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	FromNumber string `envconfig:"TWILIO_PHONE_NUMBER" default:""`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"salon.events"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" default:""`
	Currency  string `envconfig:"STRIPE_CURRENCY" default:"sgd"`
}

type TelemetryConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win over it
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.App.Location(); err != nil {
		return Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.TimeZone, err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Asia/Singapore",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		App: AppConfig{
			Name:     "salon-backend-test",
			TimeZone: "Asia/Singapore",
		},
		Leave: LeaveConfig{
			DefaultPaidDays:   14,
			DefaultUnpaidDays: 30,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Limit:   30,
			Window:  time.Minute,
		},
		Notify: NotifyConfig{
			DispatchSpec: "@every 10s",
			ReminderSpec: "0 9 * * *",
			BatchSize:    20,
			MaxAttempts:  5,
			RetryBase:    30 * time.Second,
			Lease:        2 * time.Minute,
		},
	}
}
