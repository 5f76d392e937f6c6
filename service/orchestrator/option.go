package orchestrator

import (
	"github.com/viant/corrections/policy"
	"github.com/viant/corrections/progress"
	"github.com/viant/corrections/service/control"
	"github.com/viant/corrections/service/interaction"
)

// Option customises the orchestrator.
type Option func(s *Service)

// WithInteraction sets the dialog provider.
func WithInteraction(provider interaction.Provider) Option {
	return func(s *Service) { s.provider = provider }
}

// WithOpener sets the link opener.
func WithOpener(opener interaction.Opener) Option {
	return func(s *Service) { s.opener = opener }
}

// WithControl sets the control marked busy during a submission.
func WithControl(ctrl control.Control) Option {
	return func(s *Service) { s.control = ctrl }
}

// WithBusyLabel sets the label shown on the control while busy.
func WithBusyLabel(label string) Option {
	return func(s *Service) { s.busyLabel = label }
}

// WithPolicy sets the confirmation policy; a policy in the Handle context takes precedence.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) { s.policy = p }
}

// WithListener registers a callback receiving every progress change.
func WithListener(listener func(progress.State)) Option {
	return func(s *Service) { s.listener = listener }
}
