package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDeliveryCodeLength = 6
	defaultDeliveryCodeTTL    = 24 * time.Hour
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultPoolWaitWarn       = 50 * time.Millisecond
	defaultPoolMonitorEvery   = 5 * time.Second
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

	// Database tunes how the service drives the Postgres connection
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Redis backs the Idempotency-Key store
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Kafka carries the checkout intake topic and, optionally, domain events
	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for delivery code QR images
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	Farm *FarmConfig `json:"farm" yaml:"farm"`

	Export *ExportConfig `json:"export" yaml:"export"`

	// Worker configuration for the notifier push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines statement logging and pool monitoring thresholds
type DatabaseConfig struct {
	// Statements slower than this are logged at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Pool waits longer than this within one interval are logged at warn level
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`

	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`

	// Create or alter tables from the persistence models at startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RedisConfig defines the idempotency store connection
type RedisConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// How long a completed response is replayed for the same key
	IdempotencyTTL time.Duration `json:"idempotencyTtl" yaml:"idempotencyTtl"`

	// How long an in-flight claim blocks duplicates before it expires
	LockTTL time.Duration `json:"lockTtl" yaml:"lockTtl"`
}

// KafkaConfig defines broker and topic settings
type KafkaConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Brokers []string `json:"brokers" yaml:"brokers"`

	// Topic carrying placed orders from checkout
	OrdersTopic string `json:"ordersTopic" yaml:"ordersTopic"`

	// Topic used by the kafka event publisher provider
	EventsTopic string `json:"eventsTopic" yaml:"eventsTopic"`

	GroupID string `json:"groupId" yaml:"groupId"`
	Workers int    `json:"workers" yaml:"workers"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// DeliveryConfig defines pickup code settings
type DeliveryConfig struct {
	CodeLength int           `json:"codeLength" yaml:"codeLength"`
	CodeTTL    time.Duration `json:"codeTtl" yaml:"codeTtl"`
}

// LedgerConfig defines planted crop ledger behaviour
type LedgerConfig struct {
	// Refuse to overwrite a recorded harvest date with a different one
	StrictHarvest bool `json:"strictHarvest" yaml:"strictHarvest"`
}

// FarmConfig defines farm search limits
type FarmConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// ExportConfig defines where generated farm order workbooks are archived
type ExportConfig struct {
	// gocloud.dev bucket URL, e.g. gs://harvest-exports or file:///var/lib/harvest/exports
	ArchiveBucketURL string `json:"archiveBucketUrl" yaml:"archiveBucketUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "kafka" for the events topic
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the notifier push endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Verify the OIDC token Pub/Sub attaches to push requests
	VerifyPushToken bool `json:"verifyPushToken" yaml:"verifyPushToken"`

	// Expected audience of the push token
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A local .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Delivery == nil {
		cfg.Delivery = &DeliveryConfig{}
	}
	if cfg.Delivery.CodeLength <= 0 {
		cfg.Delivery.CodeLength = defaultDeliveryCodeLength
	}
	if cfg.Delivery.CodeTTL <= 0 {
		cfg.Delivery.CodeTTL = defaultDeliveryCodeTTL
	}
	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	if cfg.Farm == nil {
		cfg.Farm = &FarmConfig{DefaultRadiusKm: 10, MaxRadiusKm: 100}
	}
	if cfg.Postgres == nil {
		cfg.Postgres = &postgres.DBConn{}
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.PoolWaitWarnThreshold <= 0 {
		cfg.Database.PoolWaitWarnThreshold = defaultPoolWaitWarn
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitorEvery
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
