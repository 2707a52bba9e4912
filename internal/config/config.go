package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		RPC
		Bindings
		Session
		Security
		Metrics
		Tasks
		Maintenance
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		URL             string
		MaxOpenConns    int
		MinIdleConns    int
		ConnMaxIdleTime time.Duration
		ConnMaxLifetime time.Duration
		LogLevel        string // silent, error, warn, info
	}
	RPC struct {
		CallTimeout time.Duration
		RateLimit   float64 // calls per second, 0 disables limiting
		RateBurst   int
	}
	Bindings struct {
		Path string // exported at startup when set
	}
	Session struct {
		Lifetime      time.Duration
		SecureCookies bool
	}
	Security struct {
		CSRFSecret string // CSRF protection is enabled when set
		BcryptCost int
	}
	Metrics struct {
		Enabled bool
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Maintenance struct {
		Schedule string // Cron format, empty disables maintenance
	}
)

// NewConfig reads configuration from the process environment. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence over it.
func NewConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_url", "")
	v.SetDefault("db_max_open_conns", 100)
	v.SetDefault("db_min_idle_conns", 5)
	v.SetDefault("db_conn_max_idle_time", "8s")
	v.SetDefault("db_conn_max_lifetime", "1h")
	v.SetDefault("db_log_level", "warn")

	v.SetDefault("rpc_call_timeout", "10s")
	v.SetDefault("rpc_rate_limit", 0)
	v.SetDefault("rpc_rate_burst", 20)
	v.SetDefault("bindings_path", "")

	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("secure_cookies", false) // the desktop shell talks plain HTTP to localhost
	v.SetDefault("csrf_secret", "")
	v.SetDefault("password_bcrypt_cost", 12)

	v.SetDefault("metrics_enabled", true)

	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("maintenance_schedule", "0 3 * * *") // Daily at 03:00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MinIdleConns:    v.GetInt("DB_MIN_IDLE_CONNS"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			LogLevel:        v.GetString("DB_LOG_LEVEL"),
		},
		RPC: RPC{
			CallTimeout: v.GetDuration("RPC_CALL_TIMEOUT"),
			RateLimit:   v.GetFloat64("RPC_RATE_LIMIT"),
			RateBurst:   v.GetInt("RPC_RATE_BURST"),
		},
		Bindings: Bindings{
			Path: v.GetString("BINDINGS_PATH"),
		},
		Session: Session{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Security: Security{
			CSRFSecret: v.GetString("CSRF_SECRET"),
			BcryptCost: v.GetInt("PASSWORD_BCRYPT_COST"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Maintenance: Maintenance{
			Schedule: v.GetString("MAINTENANCE_SCHEDULE"),
		},
	}
}
