package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the variables read by LoadConfig, e.g. PROMPTY_BASE_URL.
const envPrefix = "PROMPTY"

// Config carries client settings, typically read from the environment.
//
// Names are derived with split_words only, so a variable is read solely in
// its PROMPTY_ form; a bare API_KEY or BASE_URL belonging to another service
// is never picked up.
type Config struct {
	BaseURL     string        `split_words:"true" required:"true"`
	ProjectID   string        `split_words:"true"`
	APIKey      string        `split_words:"true" required:"true"`
	HTTPTimeout time.Duration `split_words:"true"` // zero means no client-side timeout
	Debug       bool          `default:"false"`
}

// LoadConfig populates Config from PROMPTY_BASE_URL, PROMPTY_PROJECT_ID,
// PROMPTY_API_KEY, PROMPTY_HTTP_TIMEOUT and PROMPTY_DEBUG.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// NewFromConfig constructs a Client from cfg. The timeout and debug settings
// of cfg are applied after opts, so they also cover a client injected with
// WithHTTPClient.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	all := append([]Option(nil), opts...)
	if cfg.HTTPTimeout > 0 {
		all = append(all, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		all = append(all, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, cfg.ProjectID, cfg.APIKey, all...)
}

// NewFromEnv is LoadConfig followed by NewFromConfig.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
