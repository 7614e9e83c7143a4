package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, intervals, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Auth         AuthConfig
	Scheduler    SchedulerConfig
	Notification NotificationConfig
	Marketplace  MarketplaceConfig
	Advisor      AdvisorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"flashsale"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Mexico_City"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AuthConfig struct {
	// Empty accepts any non-empty password.
	DemoPasswordHash string `envconfig:"AUTH_DEMO_PASSWORD_HASH" default:""`
}

type SchedulerConfig struct {
	TickInterval time.Duration `envconfig:"SCHEDULER_TICK_INTERVAL" default:"5s"`
}

type NotificationConfig struct {
	DisplayTTL time.Duration `envconfig:"NOTIFICATION_DISPLAY_TTL" default:"5s"`
	Capacity   int           `envconfig:"NOTIFICATION_CAPACITY" default:"100"`
}

const (
	MarketplaceModeDemo = "demo"
	MarketplaceModeLive = "live"
)

type MarketplaceConfig struct {
	Mode         string        `envconfig:"MARKETPLACE_MODE" default:"demo"`
	ClientID     string        `envconfig:"MARKETPLACE_CLIENT_ID" default:"5395929759716110"`
	ClientSecret string        `envconfig:"MARKETPLACE_CLIENT_SECRET" default:""`
	RedirectURL  string        `envconfig:"MARKETPLACE_REDIRECT_URL" default:"http://localhost:3000/callback"`
	AuthURL      string        `envconfig:"MARKETPLACE_AUTH_URL" default:"https://auth.mercadolibre.com.mx/authorization"`
	TokenURL     string        `envconfig:"MARKETPLACE_TOKEN_URL" default:"https://api.mercadolibre.com/oauth/token"`
	APIBaseURL   string        `envconfig:"MARKETPLACE_API_BASE_URL" default:"https://api.mercadolibre.com"`
	Timeout      time.Duration `envconfig:"MARKETPLACE_TIMEOUT" default:"10s"`
}

type AdvisorConfig struct {
	APIKey  string        `envconfig:"ADVISOR_API_KEY" default:""`
	Model   string        `envconfig:"ADVISOR_MODEL" default:"gemini-2.5-flash"`
	BaseURL string        `envconfig:"ADVISOR_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `envconfig:"ADVISOR_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
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
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Scheduler: SchedulerConfig{
			TickInterval: 10 * time.Millisecond,
		},
		Notification: NotificationConfig{
			DisplayTTL: 5 * time.Second,
			Capacity:   100,
		},
		Marketplace: MarketplaceConfig{
			Mode:     MarketplaceModeDemo,
			ClientID: "test-client",
			Timeout:  time.Second,
		},
		Advisor: AdvisorConfig{
			Model:   "gemini-2.5-flash",
			Timeout: time.Second,
		},
	}
}
