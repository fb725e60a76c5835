package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hotel-concierge/apperr"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Backend is the relational store handle passed to every component that needs it.
// The zero value is the unconfigured backend.
type Backend struct {
	db       *sql.DB
	connInfo string
}

func Unconfigured() Backend {
	return Backend{}
}

func NewBackend(db *sql.DB, connInfo string) Backend {
	return Backend{db: db, connInfo: connInfo}
}

func (b Backend) Configured() bool {
	return b.db != nil
}

func (b Backend) DB() (*sql.DB, error) {
	if b.db == nil {
		return nil, apperr.ErrDataUnavailable
	}
	return b.db, nil
}

// ConnInfo is the libpq connection string, needed by pq.Listener.
func (b Backend) ConnInfo() (string, error) {
	if b.db == nil {
		return "", apperr.ErrDataUnavailable
	}
	return b.connInfo, nil
}

func (b Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// InitPostgres returns the unconfigured backend when no host is set.
func InitPostgres(cfg DBConfig) (Backend, error) {
	if cfg.Host == "" {
		return Unconfigured(), nil
	}

	connStr := cfg.ConnString()
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return Unconfigured(), fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return Unconfigured(), fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return NewBackend(db, connStr), nil
}

// InitRedis returns nil when no host is set.
func InitRedis(cfg RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Address(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.OrdersTopic,
		GroupID: cfg.GroupID,
	})
}

// NewKafkaWriter returns nil when no brokers are set.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.OrdersTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
