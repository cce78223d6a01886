package config

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

var ErrMissingTokenSecret = errors.New("JWT_SECRET is not set")

type Config struct {
	Port           string
	DatabaseURL    string
	RedisAddr      string
	KafkaBroker    string
	OrdersTopic    string
	JWTSecret      string
	MenuCacheTTL   time.Duration
	PublicBaseURL  string
	AllowedOrigins []string
}

// Load reads the environment. Missing optional backends (Redis, Kafka)
// leave their address empty; callers treat that as disabled.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("MENU_CACHE_TTL", "5m"))
	if err != nil {
		return nil, errors.New("invalid MENU_CACHE_TTL: " + err.Error())
	}

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		OrdersTopic:   getEnv("ORDERS_TOPIC", "orders"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		MenuCacheTTL:  ttl,
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:5000"), "/"),
	}

	if cfg.DatabaseURL == "" {
		dsn := "host=" + getEnv("DB_HOST", "localhost") +
			" port=" + getEnv("DB_PORT", "5432") +
			" user=" + getEnv("DB_USER", "postgres") +
			" dbname=" + getEnv("DB_NAME", "foodapp") +
			" sslmode=" + getEnv("DB_SSLMODE", "disable")
		// lib/pq skips blanks after '=', so an empty password must be omitted.
		if password := os.Getenv("DB_PASSWORD"); password != "" {
			dsn += " password=" + password
		}
		cfg.DatabaseURL = dsn
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}

	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// TokenSecret returns the signing key for bearer tokens.
func (c *Config) TokenSecret() ([]byte, error) {
	if c.JWTSecret == "" {
		return nil, ErrMissingTokenSecret
	}
	return []byte(c.JWTSecret), nil
}

func MustInitPostgres(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
