package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"solarjuice/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTickInterval       = time.Second
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultFallbackLat        = 28.6139
	defaultFallbackLng        = 77.2090
	defaultQRCodeSize         = 256
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

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Simulation drives the periodic battery tick
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	Orders OrdersConfig `json:"orders" yaml:"orders"`

	// Geolocation is the fallback used when a client sends no usable position
	Geolocation GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Seed loads the demo users, shops and orders on startup
	Seed SeedConfig `json:"seed" yaml:"seed"`

	// Notifier selects where toasts are delivered
	Notifier NotifierConfig `json:"notifier" yaml:"notifier"`

	// PubSub configuration for event publishing
	PubSub PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for shop QR codes
	QRCode QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// SecretKeyConfig holds the HMAC keys for the two token types
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type SimulationConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	TickInterval time.Duration `json:"tickInterval" yaml:"tickInterval"`
}

type OrdersConfig struct {
	// RequireBattery rejects orders the machine battery cannot produce
	RequireBattery bool `json:"requireBattery" yaml:"requireBattery"`
}

type GeolocationConfig struct {
	FallbackLat float64 `json:"fallbackLat" yaml:"fallbackLat"`
	FallbackLng float64 `json:"fallbackLng" yaml:"fallbackLng"`

	// NearbyRadiusKm limits nearby shop searches, 0 means unlimited
	NearbyRadiusKm float64 `json:"nearbyRadiusKm" yaml:"nearbyRadiusKm"`
}

type SeedConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DemoPassword is set on every seeded account
	DemoPassword string `json:"demoPassword" yaml:"demoPassword"`
}

// NotifierConfig defines toast delivery configuration
type NotifierConfig struct {
	// Provider type: "log" writes toasts to the logger, "firebase" sends FCM topic messages
	Provider string `json:"provider" yaml:"provider"`

	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "" disables publishing, "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file, explicit paths first
	searchPaths := make([]string, 0, len(configPath)+1)
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}
	searchPaths = append(searchPaths, defaultPath)

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SIMULATION_TICKINTERVAL -> simulation.tickInterval
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	return Load("config", "../config", "../../config")
}

// Load reads config.yaml from the working directory or one of paths, then applies defaults.
func Load(paths ...string) (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Simulation.TickInterval <= 0 {
		c.Simulation.TickInterval = defaultTickInterval
	}
	if c.Auth.AccessTTL <= 0 {
		c.Auth.AccessTTL = defaultAccessTTL
	}
	if c.Auth.RefreshTTL <= 0 {
		c.Auth.RefreshTTL = defaultRefreshTTL
	}
	if c.Geolocation.FallbackLat == 0 && c.Geolocation.FallbackLng == 0 {
		c.Geolocation.FallbackLat = defaultFallbackLat
		c.Geolocation.FallbackLng = defaultFallbackLng
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.Notifier.Provider == "" {
		c.Notifier.Provider = "log"
	}
}

func (c *Config) validate() error {
	if c.SecretKey.Access == "" || c.SecretKey.Refresh == "" {
		return errors.New("secretKey.access and secretKey.refresh are required")
	}
	if c.Geolocation.NearbyRadiusKm < 0 {
		return errors.Errorf("geolocation.nearbyRadiusKm must not be negative, got %v", c.Geolocation.NearbyRadiusKm)
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
