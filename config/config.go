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
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"

	UnlikePolicyRetain   = "retain"
	UnlikePolicyDissolve = "dissolve"

	defaultNegativeCacheTTL   = 5 * time.Minute
	defaultDirectMatchLimit   = 50
	defaultMaxDirectContacts  = 500
	defaultSecondDegreeFanout = 25
	defaultFreeTextLimit      = 50
	defaultUnregisteredLimit  = 50
	defaultSearchConcurrency  = 8
	defaultInviteTemplate     = "{{.InviterName}} liked you on Mutuals! Join to see who else is waiting: {{.InviteURL}}"
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

	// Store selects the relational store implementation
	Store *StoreConfig `json:"store" yaml:"store"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Auth selects how session tokens from the identity provider are verified
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// PubSub configuration for the SMS gateway topic
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for profile share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which store backs the repositories
type StoreConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`
}

// AuthConfig defines session verification
type AuthConfig struct {
	// Provider is "firebase" for Firebase ID tokens or "jwt" for HS256 development tokens
	Provider string `json:"provider" yaml:"provider"`
}

// FirebaseConfig defines Firebase project settings
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// IdentityConfig defines the identity resolver cache
type IdentityConfig struct {
	// NegativeCacheTTL suppresses repeated profile lookups for unknown identities
	NegativeCacheTTL time.Duration `json:"negativeCacheTTL" yaml:"negativeCacheTTL"`
}

// DiscoveryConfig bounds the contact graph search
type DiscoveryConfig struct {
	// DirectMatchLimit caps Direct results. MaxDirectContacts only picks
	// which direct contacts are expanded to second degree.
	DirectMatchLimit   int    `json:"directMatchLimit" yaml:"directMatchLimit"`
	MaxDirectContacts  int    `json:"maxDirectContacts" yaml:"maxDirectContacts"`
	SecondDegreeFanout int    `json:"secondDegreeFanout" yaml:"secondDegreeFanout"`
	FreeTextLimit      int    `json:"freeTextLimit" yaml:"freeTextLimit"`
	UnregisteredLimit  int    `json:"unregisteredLimit" yaml:"unregisteredLimit"`
	Concurrency        int    `json:"concurrency" yaml:"concurrency"`
	DefaultCountryCode string `json:"defaultCountryCode" yaml:"defaultCountryCode"`
}

// MatchingConfig defines like/match policies
type MatchingConfig struct {
	// UnlikePolicy is "retain" (unlike never dissolves a match) or "dissolve"
	UnlikePolicy string `json:"unlikePolicy" yaml:"unlikePolicy"`
}

// SMSConfig defines the invitation sent to unregistered phone numbers
type SMSConfig struct {
	InviteTemplate string `json:"inviteTemplate" yaml:"inviteTemplate"`
	InviteURL      string `json:"inviteUrl" yaml:"inviteUrl"`
}

// PubSubConfig defines Pub/Sub configuration for the SMS gateway
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty for log only
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DISCOVERY_SECONDDEGREEFANOUT -> discovery.secondDegreeFanout
			return canonicalizeEnvKey(k, existingConfigMap), v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverPostgres
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderFirebase
	}

	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if cfg.Identity.NegativeCacheTTL <= 0 {
		cfg.Identity.NegativeCacheTTL = defaultNegativeCacheTTL
	}

	if cfg.Discovery == nil {
		cfg.Discovery = &DiscoveryConfig{}
	}
	cfg.Discovery.applyDefaults()

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	if cfg.Matching.UnlikePolicy == "" {
		cfg.Matching.UnlikePolicy = UnlikePolicyRetain
	}

	if cfg.SMS == nil {
		cfg.SMS = &SMSConfig{}
	}
	if cfg.SMS.InviteTemplate == "" {
		cfg.SMS.InviteTemplate = defaultInviteTemplate
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
}

func (d *DiscoveryConfig) applyDefaults() {
	if d.DirectMatchLimit <= 0 {
		d.DirectMatchLimit = defaultDirectMatchLimit
	}
	if d.MaxDirectContacts <= 0 {
		d.MaxDirectContacts = defaultMaxDirectContacts
	}
	if d.SecondDegreeFanout <= 0 {
		d.SecondDegreeFanout = defaultSecondDegreeFanout
	}
	if d.FreeTextLimit <= 0 {
		d.FreeTextLimit = defaultFreeTextLimit
	}
	if d.UnregisteredLimit <= 0 {
		d.UnregisteredLimit = defaultUnregisteredLimit
	}
	if d.Concurrency <= 0 {
		d.Concurrency = defaultSearchConcurrency
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
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
