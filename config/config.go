package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize  = "100KB"
	defaultAccessTokenTTL      = 24 * time.Hour
	defaultPopularLimit        = 3
	defaultPopularMaxLimit     = 50
	defaultPlannedWorkouts     = 5
	defaultCatalogCacheTTL     = 10 * time.Minute
	defaultQRCodeSize          = 256
	defaultQRCodeCorrection    = "M"
	defaultQRCodeWorkoutURLFmt = "https://fitplan.app/workouts/%s"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// PubSub configures where workout completion events are published.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configures the workout share codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// CatalogCache enables a Redis cache in front of the exercise catalog when Addr is set.
	CatalogCache *CatalogCacheConfig `json:"catalogCache" yaml:"catalogCache"`

	Workouts *WorkoutsConfig `json:"workouts" yaml:"workouts"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig controls the embedded schema migrations.
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka". Empty disables publishing.
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Comma separated broker list for the kafka provider.
	Brokers string `json:"brokers" yaml:"brokers"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// WorkoutURLFormat is a fmt pattern receiving the workout id.
	WorkoutURLFormat string `json:"workoutUrlFormat" yaml:"workoutUrlFormat"`
}

type CatalogCacheConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

type WorkoutsConfig struct {
	PopularDefaultLimit    int `json:"popularDefaultLimit" yaml:"popularDefaultLimit"`
	PopularMaxLimit        int `json:"popularMaxLimit" yaml:"popularMaxLimit"`
	DefaultPlannedWorkouts int `json:"defaultPlannedWorkouts" yaml:"defaultPlannedWorkouts"`
}

// KafkaBrokers splits the configured broker list.
func (c *PubSubConfig) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return brokers
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Migration == nil {
		c.Migration = &MigrationConfig{}
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.AccessTokenTTL <= 0 {
		c.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if c.GoogleOAuth == nil {
		c.GoogleOAuth = &GoogleOAuthConfig{}
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRCodeCorrection
	}
	if c.QRCode.WorkoutURLFormat == "" {
		c.QRCode.WorkoutURLFormat = defaultQRCodeWorkoutURLFmt
	}

	if c.CatalogCache != nil && c.CatalogCache.TTL <= 0 {
		c.CatalogCache.TTL = defaultCatalogCacheTTL
	}

	if c.Workouts == nil {
		c.Workouts = &WorkoutsConfig{}
	}
	if c.Workouts.PopularDefaultLimit <= 0 {
		c.Workouts.PopularDefaultLimit = defaultPopularLimit
	}
	if c.Workouts.PopularMaxLimit < c.Workouts.PopularDefaultLimit {
		c.Workouts.PopularMaxLimit = max(defaultPopularMaxLimit, c.Workouts.PopularDefaultLimit)
	}
	if c.Workouts.DefaultPlannedWorkouts <= 0 {
		c.Workouts.DefaultPlannedWorkouts = defaultPlannedWorkouts
	}
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
