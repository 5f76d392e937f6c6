// Package corrections submits reviewer corrections to a remote endpoint and
// falls back to a local JSON export when the submission fails.
//
// The package exposes a high-level Service façade wiring the pluggable
// layers together:
//
//   - submitter    – posts the payload to the configured endpoint
//   - exporter     – saves the payload as a dated JSON file through afs
//   - interaction  – dialogs and link opening supplied by the host
//   - orchestrator – busy state, outcome handling and fallback
//
// Typical usage:
//
//	cfg, _ := corrections.LoadConfig(ctx, afs.New(), "config.yaml")
//	srv, _ := corrections.New(corrections.WithConfig(cfg))
//	srv.Handle(ctx, payload)
package corrections
