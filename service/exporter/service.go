// Package exporter writes a corrections payload to a locally saved,
// dated JSON file.
package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/viant/corrections/internal/clock"
	"github.com/viant/corrections/model"
	"github.com/viant/corrections/progress"
	"github.com/viant/corrections/tracing"
)

const indent = "  "

var nameReplacer = strings.NewReplacer("/", "_", "\\", "_")

// Service exports payloads through a Sink.
type Service struct {
	sink Sink
}

// FileName returns {language}_corrections_{YYYY-MM-DD}.json for the UTC date of at.
func FileName(language string, at time.Time) string {
	return fmt.Sprintf("%s_corrections_%s.json", nameReplacer.Replace(language), at.UTC().Format(clock.DateLayout))
}

// Encode returns payload as 2-space indented JSON.
func Encode(payload *model.Payload) ([]byte, error) {
	return json.MarshalIndent(payload, "", indent)
}

// Export saves payload as a dated file for language and returns the file name.
func (s *Service) Export(ctx context.Context, payload *model.Payload, language string) (name string, err error) {
	ctx, span := tracing.StartSpan(ctx, "exporter.export", tracing.KindInternal)
	defer func() { tracing.EndSpan(span, err) }()

	content, err := Encode(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode corrections: %w", err)
	}
	name = FileName(language, clock.Now())
	span.WithAttributes(map[string]string{"file": name})
	if err = s.sink.Save(ctx, name, content); err != nil {
		return name, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Exports: 1})
	return name, nil
}

// New creates an exporter delivering through sink.
func New(sink Sink) *Service {
	return &Service{sink: sink}
}
