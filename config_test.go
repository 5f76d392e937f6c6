package corrections

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/corrections/policy"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(EnvConfigURL, "")
	t.Setenv(EnvEndpoint, "https://corrections.example.org/submit")

	cfg, err := LoadConfig(context.Background(), nil, "")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "https://corrections.example.org/submit", cfg.Endpoint)
	assert.Equal(t, "download-btn", cfg.Control.ID)
	assert.Equal(t, "Submitting...", cfg.Control.BusyLabel)
	assert.Equal(t, policy.ModeAsk, cfg.Policy.Mode)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.Nil(t, cfg.Validate())
}

func TestLoadConfig_YAMLAndEnvOverride(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/config/corrections.yaml"
	content := `
endpoint: "https://${env.CORR_TEST_HOST}/.netlify/functions/submit-corrections"
exportURL: "mem://localhost/exports"
timeoutSec: 15
control:
  id: submit-btn
policy:
  mode: auto
  block:
    - open-link
tracing:
  enabled: false
`
	if !assert.Nil(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content))) {
		return
	}
	t.Setenv("CORR_TEST_HOST", "statuesque.example.app")
	t.Setenv(EnvTimeoutSec, "45")
	t.Setenv(EnvPolicyMode, "deny")

	cfg, err := LoadConfig(ctx, fs, URL)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "https://statuesque.example.app/.netlify/functions/submit-corrections", cfg.Endpoint)
	assert.Equal(t, "mem://localhost/exports", cfg.ExportURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout())
	assert.Equal(t, "submit-btn", cfg.Control.ID)
	assert.Equal(t, "Submitting...", cfg.Control.BusyLabel)
	assert.Equal(t, "deny", cfg.Policy.Mode)
	assert.Equal(t, []string{policy.PromptOpenLink}, cfg.Policy.BlockList)
}

func TestLoadConfig_InvalidTimeoutEnvIsIgnored(t *testing.T) {
	t.Setenv(EnvConfigURL, "")
	t.Setenv(EnvTimeoutSec, "soon")
	cfg, err := LoadConfig(context.Background(), nil, "")
	assert.Nil(t, err)
	assert.Equal(t, 0, cfg.TimeoutSec)
}

func TestLoadConfig_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := LoadConfig(ctx, nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)

	fs := afs.New()
	URL := "mem://localhost/config/broken.yaml"
	assert.Nil(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("endpoint: [unterminated")))
	_, err = LoadConfig(ctx, fs, URL)
	assert.NotNil(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "valid", mutate: func(c *Config) {}},
		{description: "missing endpoint", mutate: func(c *Config) { c.Endpoint = " " }, expectErr: true},
		{description: "negative timeout", mutate: func(c *Config) { c.TimeoutSec = -1 }, expectErr: true},
		{description: "missing control id", mutate: func(c *Config) { c.Control.ID = "" }, expectErr: true},
		{description: "bad policy mode", mutate: func(c *Config) { c.Policy.Mode = "maybe" }, expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Endpoint = "http://localhost/submit"
			testCase.mutate(cfg)
			if testCase.expectErr {
				assert.NotNil(t, cfg.Validate())
				return
			}
			assert.Nil(t, cfg.Validate())
		})
	}
	var cfg *Config
	assert.NotNil(t, cfg.Validate())
}
