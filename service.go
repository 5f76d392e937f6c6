package corrections

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/viant/afs"
	"github.com/viant/corrections/model"
	"github.com/viant/corrections/policy"
	"github.com/viant/corrections/progress"
	"github.com/viant/corrections/service/control"
	"github.com/viant/corrections/service/exporter"
	"github.com/viant/corrections/service/interaction"
	"github.com/viant/corrections/service/orchestrator"
	"github.com/viant/corrections/service/submitter"
	"github.com/viant/corrections/tracing"
)

// Service represents the corrections submission façade.
type Service struct {
	config       *Config
	client       *http.Client
	fs           afs.Service
	sink         exporter.Sink
	provider     interaction.Provider
	opener       interaction.Opener
	control      control.Control
	policy       *policy.Policy
	listener     func(progress.State)
	tracingErr   error
	submitter    *submitter.Service
	exporter     *exporter.Service
	orchestrator *orchestrator.Service
}

// Handle submits payload, falling back to a local export on failure. It
// never fails; outcomes are reported through the interaction provider.
func (s *Service) Handle(ctx context.Context, payload *model.Payload) {
	s.orchestrator.Handle(ctx, payload)
}

// Submit performs the remote submission only.
func (s *Service) Submit(ctx context.Context, payload *model.Payload) *model.Outcome {
	return s.submitter.Submit(ctx, payload)
}

// Export saves payload locally only.
func (s *Service) Export(ctx context.Context, payload *model.Payload) (string, error) {
	return s.exporter.Export(ctx, payload, payload.Language())
}

// Config returns the effective configuration.
func (s *Service) Config() *Config { return s.config }

// Control returns the control marked busy while submitting.
func (s *Service) Control() control.Control { return s.control }

// Close releases resources held by the opener, such as its shell session.
func (s *Service) Close() error {
	if closer, ok := s.opener.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if s.tracingErr != nil {
		return fmt.Errorf("failed to init tracing: %w", s.tracingErr)
	}
	if tc := s.config.Tracing; tc.Enabled {
		if err := tracing.Init(tc.Service, tc.Version, tc.Output); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	if err := s.ensureBaseSetup(); err != nil {
		return err
	}
	s.submitter = submitter.New(s.config.Endpoint, s.client)
	s.exporter = exporter.New(s.sink)
	s.orchestrator = orchestrator.New(s.submitter, s.exporter,
		orchestrator.WithInteraction(s.provider),
		orchestrator.WithOpener(s.opener),
		orchestrator.WithControl(s.control),
		orchestrator.WithBusyLabel(s.config.Control.BusyLabel),
		orchestrator.WithPolicy(s.policy),
		orchestrator.WithListener(s.listener),
	)
	return nil
}

func (s *Service) ensureBaseSetup() error {
	if s.client == nil {
		s.client = &http.Client{Timeout: s.config.Timeout()}
	}
	if s.sink == nil {
		if s.fs == nil {
			s.fs = afs.New()
		}
		exportURL := s.config.ExportURL
		if exportURL == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve export directory: %w", err)
			}
			exportURL = wd
		}
		s.sink = exporter.NewStorageSink(s.fs, exportURL)
	}
	if s.provider == nil {
		s.provider = interaction.NewTerminal()
	}
	if s.opener == nil {
		s.opener = interaction.NewCommandOpener("")
	}
	if s.control == nil {
		s.control = control.NewButton(s.config.Control.ID, s.config.Control.Label)
	}
	if s.policy == nil {
		s.policy = policy.FromConfig(&s.config.Policy)
	} else {
		cfg := *s.config
		cfg.Policy = *policy.ToConfig(s.policy)
		s.config = &cfg
	}
	return nil
}

// New creates a Service.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
