package rewards

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port     string
	LogLevel string
	Mongo    MongoConfig
	Cache    CacheConfig
	Rabbit   RabbitConfig
	Kafka    KafkaConfig
	// параллельная обработка заказов
	OrdersCount int
	// пустой - трассировка выключена
	OtelEndpoint string
}

type MongoConfig struct {
	Addr     string
	Database string
}

type CacheConfig struct {
	Addr     string
	User     string
	Password string
}

type RabbitConfig struct {
	Addr     string
	Port     string
	User     string
	Password string
}

type KafkaConfig struct {
	Addr  string
	Port  string
	Topic string
}

func (c CacheConfig) Enabled() bool  { return c.Addr != "" }
func (c RabbitConfig) Enabled() bool { return c.Addr != "" }
func (c KafkaConfig) Enabled() bool  { return c.Addr != "" }

// Конфигурация из переменных окружения
func GetConfig() (Config, error) {
	cfg := Config{
		Port:     os.Getenv("REWARDS_PORT"),
		LogLevel: getenv("REWARDS_LOG_LEVEL", "info"),
		Mongo: MongoConfig{
			Addr:     os.Getenv("REWARDS_MONGO"),
			Database: getenv("REWARDS_MONGO_DB", "Rewards"),
		},
		Cache: CacheConfig{
			Addr:     os.Getenv("REWARDS_CACHE_URL"),
			User:     os.Getenv("REWARDS_CACHE_USER"),
			Password: os.Getenv("REWARDS_CACHE_PWD"),
		},
		Rabbit: RabbitConfig{
			Addr:     os.Getenv("RABBIT_URL"),
			Port:     getenv("RABBIT_PORT", "5672"),
			User:     os.Getenv("RABBIT_USER"),
			Password: os.Getenv("RABBIT_PASSWORD"),
		},
		Kafka: KafkaConfig{
			Addr:  os.Getenv("KAFKA_ORDER_URL"),
			Port:  getenv("KAFKA_ORDER_PORT", "9092"),
			Topic: getenv("KAFKA_ORDER_TOPIC", "orders"),
		},
		OtelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.Mongo.Addr == "" {
		return cfg, fmt.Errorf("env REWARDS_MONGO is not set")
	}
	if cfg.Rabbit.Enabled() && cfg.Rabbit.User == "" {
		return cfg, fmt.Errorf("env RABBIT_USER is not set")
	}

	cfg.OrdersCount = 5
	if v := os.Getenv("REWARDS_ORDERS_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("env REWARDS_ORDERS_COUNT: %w", err)
		}
		cfg.OrdersCount = n
	}
	if cfg.OrdersCount < 1 {
		cfg.OrdersCount = 1
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
