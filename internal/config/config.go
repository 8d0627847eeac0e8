package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
)

type Config struct {
	Env         string
	HTTPPort    int
	CORSOrigins []string

	StorageDriver string
	DynamoDB      DynamoDBConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Tracing       TracingConfig
}

type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	QuestionnaireTable string
	EstimateTable      string
	CounterTable       string
}

type PostgresConfig struct {
	DSN string
}

// RedisConfig configures the estimate read cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type TracingConfig struct {
	Enabled      bool
	Exporter     string
	OTLPEndpoint string
	ServiceName  string
	SampleRatio  float64
}

func (c RedisConfig) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

// Load reads defaults, an optional config.toml (./config or .) and environment overrides.
// CONFIG_NAME selects a different file name.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("STORAGE_DRIVER", DriverDynamoDB)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("QUESTIONNAIRES_TABLE", "questionnaires")
	v.SetDefault("ESTIMATES_TABLE", "estimates")
	v.SetDefault("COUNTERS_TABLE", "counters")

	v.SetDefault("POSTGRES_DSN", "")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "24h")

	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER", "stdout")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_SERVICE_NAME", "quicksizer")
	v.SetDefault("OTEL_SAMPLER_RATIO", 1.0)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:           v.GetString("APP_ENV"),
		HTTPPort:      v.GetInt("HTTP_PORT"),
		CORSOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DynamoDB: DynamoDBConfig{
			Region:             v.GetString("AWS_REGION"),
			Endpoint:           v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:        v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:    v.GetString("AWS_SECRET_ACCESS_KEY"),
			QuestionnaireTable: v.GetString("QUESTIONNAIRES_TABLE"),
			EstimateTable:      v.GetString("ESTIMATES_TABLE"),
			CounterTable:       v.GetString("COUNTERS_TABLE"),
		},
		Postgres: PostgresConfig{DSN: v.GetString("POSTGRES_DSN")},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      v.GetDuration("REDIS_TTL"),
		},
		Tracing: TracingConfig{
			Enabled:      v.GetBool("OTEL_ENABLED"),
			Exporter:     strings.ToLower(v.GetString("OTEL_EXPORTER")),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
			SampleRatio:  v.GetFloat64("OTEL_SAMPLER_RATIO"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	switch c.StorageDriver {
	case DriverDynamoDB:
		if c.DynamoDB.QuestionnaireTable == "" || c.DynamoDB.EstimateTable == "" || c.DynamoDB.CounterTable == "" {
			return errors.New("dynamodb table names must not be empty")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("invalid REDIS_TTL %s", c.Redis.TTL)
	}
	if c.Tracing.Enabled && c.Tracing.Exporter != "stdout" && c.Tracing.Exporter != "otlp" {
		return fmt.Errorf("unknown OTEL_EXPORTER %q", c.Tracing.Exporter)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
