package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration. Everything is read from the
// environment; BOT_TOKEN is the only required value.
type Config struct {
	Bot        BotConfig
	Database   DatabaseConfig
	Membership MembershipConfig
	Scan       ScanConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Admin      AdminConfig
	Log        LogConfig

	// SeedFile overrides the embedded group seed list.
	SeedFile string `env:"WARDEN_SEED_FILE"`
	// MinTenure is how long a requester must have been in a verification
	// network group before they become eligible for the gated network.
	MinTenure time.Duration `env:"MIN_TENURE" envDefault:"168h"`
}

// BotConfig configures the platform client and the update poller.
type BotConfig struct {
	Token       string        `env:"BOT_TOKEN,required,notEmpty"`
	APIURL      string        `env:"BOT_API_URL" envDefault:"https://api.telegram.org"`
	Timeout     time.Duration `env:"BOT_API_TIMEOUT" envDefault:"45s"`
	RateLimit   float64       `env:"BOT_API_RATE" envDefault:"25"`
	PollTimeout time.Duration `env:"POLL_TIMEOUT" envDefault:"30s"`
	// RestartDelay is the fixed backoff before the supervisor restarts a
	// failed polling loop.
	RestartDelay       time.Duration `env:"POLL_RESTART_DELAY" envDefault:"10s"`
	SkipPendingUpdates bool          `env:"SKIP_PENDING_UPDATES" envDefault:"true"`
}

// DatabaseConfig selects the durable store. Driver is "sqlite" or "postgres".
type DatabaseConfig struct {
	Driver       string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	URL          string `env:"DATABASE_URL" envDefault:"file:bot.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"4"`
}

// MembershipConfig tunes remote membership lookups.
type MembershipConfig struct {
	// Fanout bounds concurrent lookups across the groups of one network.
	// 1 probes groups sequentially.
	Fanout int `env:"MEMBERSHIP_FANOUT" envDefault:"4"`
	// CacheTTL of zero disables the standing cache.
	CacheTTL  time.Duration `env:"MEMBERSHIP_CACHE_TTL" envDefault:"60s"`
	CacheSize int           `env:"MEMBERSHIP_CACHE_SIZE" envDefault:"100000"`
}

// ScanConfig configures the backlog scanner.
type ScanConfig struct {
	PageSize    int           `env:"SCAN_PAGE_SIZE" envDefault:"100"`
	Concurrency int           `env:"SCAN_CONCURRENCY" envDefault:"1"`
	Interval    time.Duration `env:"SCAN_INTERVAL" envDefault:"1h"`
	OnStart     bool          `env:"SCAN_ON_START" envDefault:"true"`
}

// RedisConfig enables the shared membership cache when URL is set.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// KafkaConfig enables streaming of member events when Brokers is set.
type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic       string   `env:"KAFKA_MEMBER_EVENTS_TOPIC" envDefault:"warden.member-events"`
	ClientID    string   `env:"KAFKA_CLIENT_ID" envDefault:"warden"`
	CreateTopic bool     `env:"KAFKA_CREATE_TOPIC" envDefault:"false"`
	BufferSize  int      `env:"KAFKA_BUFFER_SIZE" envDefault:"1024"`
}

// AdminConfig configures operator access: the admin HTTP listener and the
// users allowed to run /process_pending. An empty UserIDs list allows anyone.
// Token, when set, is required on /admin routes.
type AdminConfig struct {
	Addr    string  `env:"ADMIN_ADDR" envDefault:"127.0.0.1:8080"`
	UserIDs []int64 `env:"ADMIN_USER_IDS" envSeparator:","`
	Token   string  `env:"ADMIN_TOKEN"`
}

type LogConfig struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	AddSource bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// FromEnv builds and validates a Config from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the services cannot run with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.MinTenure < 0 {
		return fmt.Errorf("MIN_TENURE must not be negative")
	}
	if c.Membership.Fanout < 1 {
		return fmt.Errorf("MEMBERSHIP_FANOUT must be at least 1")
	}
	if c.Scan.PageSize < 1 || c.Scan.PageSize > 1000 {
		return fmt.Errorf("SCAN_PAGE_SIZE must be between 1 and 1000")
	}
	if c.Scan.Concurrency < 1 {
		return fmt.Errorf("SCAN_CONCURRENCY must be at least 1")
	}
	if c.Bot.RateLimit <= 0 {
		return fmt.Errorf("BOT_API_RATE must be positive")
	}
	if c.Bot.Timeout <= c.Bot.PollTimeout {
		return fmt.Errorf("BOT_API_TIMEOUT (%s) must exceed POLL_TIMEOUT (%s)", c.Bot.Timeout, c.Bot.PollTimeout)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
