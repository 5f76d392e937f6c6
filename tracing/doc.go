// Package tracing records each corrections submission as an OpenTelemetry
// trace: orchestrator.handle for the invocation, submitter.submit for the
// POST and exporter.export for each local save. Spans are no-ops until Init
// or InitWithExporter installs a provider.
package tracing
