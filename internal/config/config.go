package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env         Env
	Server      ServerConfig
	Database    DatabaseConfig
	Storage     StorageConfig
	Cloud       CloudConfig
	Replication ReplicationConfig
	NATS        NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// StorageConfig configures the local content directory holding blob files.
type StorageConfig struct {
	FilesDir string `envconfig:"STORAGE_FILES_DIR" required:"true"`
}

// CloudConfig configures the remote cloud disk provider.
type CloudConfig struct {
	BaseURL        string        `envconfig:"CLOUD_BASE_URL" default:"https://cloud-api.yandex.net"`
	APIKey         string        `envconfig:"CLOUD_API_KEY" required:"true"`
	RequestTimeout time.Duration `envconfig:"CLOUD_REQUEST_TIMEOUT" default:"30s"`
}

// ReplicationConfig configures the background replication queue.
type ReplicationConfig struct {
	QueueSize int `envconfig:"REPLICATION_QUEUE_SIZE" default:"64"`
	Workers   int `envconfig:"REPLICATION_WORKERS" default:"4"`
}

// NATSConfig configures the optional replication event publisher.
// Publishing is disabled when URL is empty.
type NATSConfig struct {
	URL     string `envconfig:"NATS_URL" default:""`
	Subject string `envconfig:"NATS_SUBJECT" default:"files.replicated"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
