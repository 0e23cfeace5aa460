package config

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config carries every setting the three binaries read from the environment.
type Config struct {
	Port             string
	StoreDriver      string
	SQLitePath       string
	RedisNamespace   string
	KafkaBroker      string
	KafkaTopic       string
	KafkaGroupID     string
	JWTSecret        string
	QRBaseURL        string
	LogLevel         string
	LogFormat        string
	ActivityFeedSize int64
	RestaurantSvcURL string
	ActivitySvcURL   string
	FrontendDir      string
}

// Load reads an optional .env file and then the process environment.
func Load(defaultPort string) *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	return &Config{
		Port:             getEnv("PORT", defaultPort),
		StoreDriver:      getEnv("STORE_DRIVER", "memory"),
		SQLitePath:       getEnv("SQLITE_PATH", "restaurant.db"),
		RedisNamespace:   getEnv("REDIS_NAMESPACE", "rik:"),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "restaurant-events"),
		KafkaGroupID:     getEnv("KAFKA_GROUP_ID", "activity-svc"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		QRBaseURL:        getEnv("QR_BASE_URL", "http://localhost:8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		ActivityFeedSize: getEnvInt("ACTIVITY_FEED_SIZE", 100),
		RestaurantSvcURL: getEnv("RESTAURANT_SVC_URL", "http://localhost:8081"),
		ActivitySvcURL:   getEnv("ACTIVITY_SVC_URL", "http://localhost:8083"),
		FrontendDir:      getEnv("FRONTEND_DIR", "./frontend"),
	}
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET not set")

// RequireJWTSecret fails when no token secret is configured. Services that
// verify tokens call it before serving.
func (c *Config) RequireJWTSecret() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer setting, using default")
		return fallback
	}
	return n
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	return client
}

func MustInitSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to open sqlite database")
	}
	return db
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
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
