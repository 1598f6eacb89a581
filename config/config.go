package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr       string
	APIBaseURL     string
	APIAuthScheme  string
	PublicBaseURL  string
	ReviewDelay    time.Duration
	KitchenPoll    time.Duration
	SessionTTL     time.Duration
	RouteRoles     string
	CORSOrigins    []string
	RedisAddr      string
	PostgresDSN    string
	KafkaBroker    string
	EventsTopic    string
	RequestTimeout time.Duration
	VisitorIdle    time.Duration
	SecureCookies  bool
}

// Load reads the process environment, seeding it from a .env file when one exists.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}

	cfg := Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		APIAuthScheme:  getEnv("API_AUTH_SCHEME", "Token"),
		PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		ReviewDelay:    getDuration("REVIEW_DELAY", 20*time.Minute),
		KitchenPoll:    getDuration("KITCHEN_POLL_INTERVAL", 30*time.Second),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		RouteRoles:     os.Getenv("ROUTE_ROLES"),
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		EventsTopic:    getEnv("KAFKA_TOPIC", "orderflow-events"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 0),
		VisitorIdle:    getDuration("VISITOR_IDLE_TTL", 6*time.Hour),
		SecureCookies:  getEnv("SECURE_COOKIES", "false") == "true",
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.PostgresDSN = "host=" + host + " port=" + getEnv("DB_PORT", "5432") +
			" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
			" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"
	}

	return cfg
}

func MustInitPostgres(dsn string) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
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

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
