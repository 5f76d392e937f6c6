package corrections

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/corrections/internal/envexpr"
	"github.com/viant/corrections/policy"
	"github.com/viant/corrections/service/control"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding configuration values.
const (
	EnvConfigURL  = "CORRECTIONS_CONFIG"
	EnvEndpoint   = "CORRECTIONS_ENDPOINT"
	EnvExportURL  = "CORRECTIONS_EXPORT_URL"
	EnvTimeoutSec = "CORRECTIONS_TIMEOUT_SEC"
	EnvPolicyMode = "CORRECTIONS_POLICY_MODE"
)

// Config is a serialisable representation of the submitter configuration.
// The zero value of every nested section inherits package defaults.
type Config struct {
	// Endpoint receives the corrections POST request.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	// ExportURL is the afs base URL of local exports; empty means the working directory.
	ExportURL string `json:"exportURL,omitempty" yaml:"exportURL,omitempty"`
	// TimeoutSec bounds the request; 0 waits as long as the transport does.
	TimeoutSec int `json:"timeoutSec,omitempty" yaml:"timeoutSec,omitempty"`

	Control ControlConfig `json:"control" yaml:"control"`
	Policy  policy.Config `json:"policy" yaml:"policy"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// ControlConfig identifies the control marked busy while submitting.
type ControlConfig struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	BusyLabel string `json:"busyLabel,omitempty" yaml:"busyLabel,omitempty"`
}

// TracingConfig enables the OpenTelemetry stdout exporter.
type TracingConfig struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns a Config populated with default values. Endpoint
// has no default and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		Control: ControlConfig{
			ID:        control.DefaultID,
			Label:     "Submit Corrections",
			BusyLabel: control.DefaultBusyLabel,
		},
		Policy: policy.Config{Mode: policy.ModeAsk},
		Tracing: TracingConfig{
			Service: "corrections",
			Version: "0.1.0",
		},
	}
}

// Timeout returns the request timeout, 0 meaning none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config was nil")
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("endpoint is required (set %s)", EnvEndpoint)
	}
	if c.TimeoutSec < 0 {
		return fmt.Errorf("timeoutSec must be >= 0")
	}
	if c.Control.ID == "" {
		return fmt.Errorf("control.id is required")
	}
	return c.Policy.Validate()
}

// LoadConfig reads a YAML config from URL through fs, expands ${env.KEY}
// references and applies environment overrides. An empty URL falls back
// to CORRECTIONS_CONFIG; when both are empty only defaults and
// environment values are used.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	cfg := DefaultConfig()
	if URL == "" {
		URL = os.Getenv(EnvConfigURL)
	}
	if URL != "" {
		if fs == nil {
			fs = afs.New()
		}
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
		}
		log.Printf("Loaded config from %s", URL)
	}
	envexpr.ExpandAll(&cfg.Endpoint, &cfg.ExportURL, &cfg.Tracing.Output)
	envOverride(&cfg.Endpoint, EnvEndpoint)
	envOverride(&cfg.ExportURL, EnvExportURL)
	envOverrideInt(&cfg.TimeoutSec, EnvTimeoutSec)
	envOverride(&cfg.Policy.Mode, EnvPolicyMode)
	return cfg, nil
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("Invalid %s=%q, keeping %d", key, v, *target)
		return
	}
	*target = n
}
