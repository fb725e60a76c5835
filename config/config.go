package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"APP_ENV" env-default:"production"`
	App     AppConfig     `yaml:"app"`
	DB      DBConfig      `yaml:"db"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Scraper ScraperConfig `yaml:"scraper"`
	Voice   VoiceConfig   `yaml:"voice"`
	Feed    FeedConfig    `yaml:"feed"`
	Gateway GatewayConfig `yaml:"gateway"`
}

// Default listen ports, used when APP_PORT is unset. They match the
// gateway's default service URLs.
const (
	GatewayPort   = "8080"
	ConciergePort = "8081"
	FeedPort      = "8082"
)

type AppConfig struct {
	Host string `yaml:"host" env:"APP_HOST" env-default:""`
	// Port falls back to the service's own default port when empty.
	Port string `yaml:"port" env:"APP_PORT" env-default:""`
	// PublicURL is the base URL the dashboard is served from.
	PublicURL string `yaml:"public_url" env:"APP_PUBLIC_URL" env-default:"http://localhost:8080"`
}

// DBConfig leaves Host empty by default: an empty host means the backend is not configured.
type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:""`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"concierge"`
	User     string `yaml:"user" env:"DB_USER" env-default:"concierge"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type RedisConfig struct {
	Host string        `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL  time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"30m"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	OrdersTopic string   `yaml:"orders_topic" env:"KAFKA_ORDERS_TOPIC" env-default:"orders.created"`
	GroupID     string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"feed-svc"`
}

type ScraperConfig struct {
	Timeout    time.Duration `yaml:"timeout" env:"SCRAPER_TIMEOUT" env-default:"10s"`
	NameMaxLen int           `yaml:"name_max_len" env:"SCRAPER_NAME_MAX_LEN" env-default:"50"`
	MaxItems   int           `yaml:"max_items" env:"SCRAPER_MAX_ITEMS" env-default:"20"`
	UserAgent  string        `yaml:"user_agent" env:"SCRAPER_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
}

type VoiceConfig struct {
	AgentID         string `yaml:"agent_id" env:"VOICE_AGENT_ID" env-default:"agent_12345"`
	LLMWebsocketURL string `yaml:"llm_websocket_url" env:"VOICE_LLM_WEBSOCKET_URL" env-default:"wss://api.openai.com/v1/realtime"`
}

const (
	FeedSourcePostgres = "postgres"
	FeedSourceKafka    = "kafka"
)

type FeedConfig struct {
	Source string `yaml:"source" env:"FEED_SOURCE" env-default:"postgres"`
	Limit  int    `yaml:"limit" env:"FEED_LIMIT" env-default:"10"`
	// Channel is the NOTIFY channel the orders insert trigger publishes on.
	Channel string `yaml:"channel" env:"FEED_CHANNEL" env-default:"orders_inserted"`
	// RegisterTimeout bounds how long LISTEN may wait for a connection.
	RegisterTimeout time.Duration `yaml:"register_timeout" env:"FEED_REGISTER_TIMEOUT" env-default:"10s"`
}

type GatewayConfig struct {
	ConciergeSvcURL string `yaml:"concierge_svc_url" env:"CONCIERGE_SVC_URL" env-default:"http://localhost:8081"`
	FeedSvcURL      string `yaml:"feed_svc_url" env:"FEED_SVC_URL" env-default:"http://localhost:8082"`
}

// Load reads CONFIG_PATH when it is set and falls back to the environment otherwise.
// Load reads the configuration with the concierge service's default port.
func Load() (*Config, error) {
	return LoadService(ConciergePort)
}

// LoadService reads the configuration, listening on defaultPort unless a
// port is configured.
func LoadService(defaultPort string) (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	if cfg.App.Port == "" {
		cfg.App.Port = defaultPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("app.port is required")
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper.timeout must be positive")
	}
	if c.Scraper.NameMaxLen <= 0 {
		return fmt.Errorf("scraper.name_max_len must be positive")
	}
	if c.Scraper.MaxItems <= 0 {
		return fmt.Errorf("scraper.max_items must be positive")
	}
	if c.Feed.Limit <= 0 {
		return fmt.Errorf("feed.limit must be positive")
	}
	switch c.Feed.Source {
	case FeedSourcePostgres:
		if c.Feed.Channel == "" {
			return fmt.Errorf("feed.channel is required for the postgres feed source")
		}
	case FeedSourceKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required for the kafka feed source")
		}
	default:
		return fmt.Errorf("unknown feed source: %s", c.Feed.Source)
	}
	return nil
}

func (c *DBConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *AppConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}
