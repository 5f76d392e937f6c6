package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracingExporter(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	if !assert.Nil(t, InitWithExporter("corrections", "0.0.1", exporter)) {
		return
	}

	ctx, parent := StartSpan(context.Background(), "orchestrator.handle", KindInternal)
	_, child := StartSpan(ctx, "submitter.submit", KindClient)
	child.WithAttributes(map[string]string{"endpoint": "http://localhost"})
	child.SetStatusFromHTTPCode(429)
	child.End()
	EndSpan(parent, errors.New("boom"))

	spans := exporter.GetSpans()
	if !assert.Len(t, spans, 2) {
		return
	}
	assert.Equal(t, "submitter.submit", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	assert.Equal(t, "orchestrator.handle", spans[1].Name)
	assert.Equal(t, "boom", spans[1].Status.Description)
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetInt("k", 1)
	span.SetStatus(nil)
	span.SetStatusFromHTTPCode(200)
	span.End()
	EndSpan(span, nil)
}
