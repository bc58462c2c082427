package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultReminderInterval = 5
	defaultReminderBatch    = 25
	defaultWindowDuration   = 60 * time.Minute
	defaultEventTimezone    = "America/Recife"
	defaultAdminTokenTTL    = 8 * time.Hour
	defaultWebPushTTL       = 60
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Event describes the fair this deployment serves.
	Event EventConfig `json:"event" yaml:"event"`

	// WebPush holds the VAPID key pair used to sign push deliveries.
	WebPush *WebPushConfig `json:"webPush" yaml:"webPush"`

	// Reminder controls the periodic reminder sweep.
	Reminder ReminderConfig `json:"reminder" yaml:"reminder"`

	// Admin configures the dashboard login.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Jobs configures the token guarding the worker job endpoints.
	Jobs JobsConfig `json:"jobs" yaml:"jobs"`

	// Security holds secrets that are not tied to a single subsystem.
	Security SecurityConfig `json:"security" yaml:"security"`

	// QRCode configures the registration status QR codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EventConfig describes the fair edition served by this deployment.
type EventConfig struct {
	Name string `json:"name" yaml:"name"`
	// Timezone used when formatting selection deadlines in notifications.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// WebPushConfig holds the VAPID credentials for the push transport.
type WebPushConfig struct {
	VAPIDPublicKey  string `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`
	// Subscriber is the contact address sent to push services (mailto: or URL).
	Subscriber string `json:"subscriber" yaml:"subscriber"`
	// TTLSeconds is how long push services may retain an undelivered message.
	TTLSeconds int `json:"ttlSeconds" yaml:"ttlSeconds"`
}

// ReminderConfig controls the reminder sweep cadence and batch size.
type ReminderConfig struct {
	IntervalMinutes int           `json:"intervalMinutes" yaml:"intervalMinutes"`
	BatchSize       int           `json:"batchSize" yaml:"batchSize"`
	WindowDuration  time.Duration `json:"windowDuration" yaml:"windowDuration"`
}

// AdminConfig configures the dashboard login.
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	// PasswordHash is a bcrypt hash of the admin password.
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	JWTSecret    string        `json:"jwtSecret" yaml:"jwtSecret"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// JobsConfig guards the worker job endpoints invoked by the external scheduler.
type JobsConfig struct {
	Token string `json:"token" yaml:"token"`
}

// SecurityConfig holds cross-cutting secrets.
type SecurityConfig struct {
	// DocumentHashSalt salts the one-way hash of the exhibitor tax document
	// stored on push subscriptions.
	DocumentHashSalt string `json:"documentHashSalt" yaml:"documentHashSalt"`
}

// QRCodeConfig configures registration status QR codes.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL is the public status page; the document is appended as a query.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf, overlaying environment variables.
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: WEBPUSH_VAPIDPUBLICKEY -> webPush.vapidPublicKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Reminder.IntervalMinutes <= 0 {
		cfg.Reminder.IntervalMinutes = defaultReminderInterval
	}
	if cfg.Reminder.BatchSize <= 0 {
		cfg.Reminder.BatchSize = defaultReminderBatch
	}
	if cfg.Reminder.WindowDuration <= 0 {
		cfg.Reminder.WindowDuration = defaultWindowDuration
	}
	if strings.TrimSpace(cfg.Event.Timezone) == "" {
		cfg.Event.Timezone = defaultEventTimezone
	}
	if cfg.Admin != nil && cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = defaultAdminTokenTTL
	}
	if cfg.WebPush != nil && cfg.WebPush.TTLSeconds <= 0 {
		cfg.WebPush.TTLSeconds = defaultWebPushTTL
	}
}

// validate refuses to start with missing credentials rather than failing
// per-request later.
func validate(cfg *Config) error {
	if cfg.WebPush == nil || cfg.WebPush.VAPIDPublicKey == "" || cfg.WebPush.VAPIDPrivateKey == "" {
		return errors.New("webPush VAPID key pair is required")
	}
	if cfg.WebPush.Subscriber == "" {
		return errors.New("webPush subscriber contact is required")
	}
	if cfg.Security.DocumentHashSalt == "" {
		return errors.New("security documentHashSalt is required")
	}

	return nil
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
