package policy

import (
	"context"
	"fmt"
	"strings"
)

// Confirmation modes.
const (
	ModeAsk  = "ask"  // ask the user (default)
	ModeAuto = "auto" // accept without asking
	ModeDeny = "deny" // decline without asking
)

// Prompt names raised by the orchestrator.
const (
	PromptFallback = "fallback"
	PromptOpenLink = "open-link"
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// Policy controls how confirmation prompts are answered.
//
//   - BlockList prompts are always declined.
//   - AllowList prompts are always accepted.
//   - Any other prompt follows Mode.
//
// A nil *Policy asks for every prompt.
type Policy struct {
	Mode      string
	AllowList []string
	BlockList []string
}

// Config represents the serialisable form of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// Validate checks the configured mode.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Mode) {
	case "", ModeAsk, ModeAuto, ModeDeny:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %q", c.Mode)
}

// ToConfig converts a Policy into its Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a Config into a Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      strings.ToLower(c.Mode),
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// Confirm answers prompt, asking confirmer only when the policy does not decide.
// A nil confirmer declines.
func (p *Policy) Confirm(ctx context.Context, confirmer Confirmer, prompt, message string) bool {
	if p != nil {
		if contains(p.BlockList, prompt) {
			return false
		}
		if contains(p.AllowList, prompt) {
			return true
		}
		switch p.Mode {
		case ModeAuto:
			return true
		case ModeDeny:
			return false
		}
	}
	if confirmer == nil {
		return false
	}
	return confirmer.Confirm(ctx, message)
}

func contains(list []string, prompt string) bool {
	for _, candidate := range list {
		if strings.EqualFold(candidate, prompt) {
			return true
		}
	}
	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy from ctx, nil when absent.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
