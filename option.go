package corrections

import (
	"net/http"

	"github.com/viant/afs"
	"github.com/viant/corrections/policy"
	"github.com/viant/corrections/progress"
	"github.com/viant/corrections/service/control"
	"github.com/viant/corrections/service/exporter"
	"github.com/viant/corrections/service/interaction"
	"github.com/viant/corrections/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the Service.
type Option func(s *Service)

// WithConfig sets the configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Service) { s.config = cfg }
}

// WithHTTPClient sets the client used for submissions.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) { s.client = client }
}

// WithFs sets the file system backing the default export sink.
func WithFs(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithSink sets the export sink, replacing the afs storage sink.
func WithSink(sink exporter.Sink) Option {
	return func(s *Service) { s.sink = sink }
}

// WithInteraction sets the dialog provider; the default is the terminal.
func WithInteraction(provider interaction.Provider) Option {
	return func(s *Service) { s.provider = provider }
}

// WithOpener sets the link opener; the default runs the platform open command.
func WithOpener(opener interaction.Opener) Option {
	return func(s *Service) { s.opener = opener }
}

// WithControl sets the control marked busy while submitting.
func WithControl(ctrl control.Control) Option {
	return func(s *Service) { s.control = ctrl }
}

// WithPolicy sets the confirmation policy, replacing the configured one.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) { s.policy = p }
}

// WithListener registers a callback receiving submission progress.
func WithListener(listener func(progress.State)) Option {
	return func(s *Service) { s.listener = listener }
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter. If
// outputFile is empty traces go to stdout. The first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingErr = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom exporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingErr = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
