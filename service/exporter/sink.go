package exporter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Sink delivers a named file to the user.
type Sink interface {
	Save(ctx context.Context, name string, content []byte) error
}

// StorageSink saves files under a base URL of any afs supported storage
// (file://, mem://, gs://, s3://...).
type StorageSink struct {
	fs      afs.Service
	baseURL string
}

// URL returns the destination URL of name.
func (s *StorageSink) URL(name string) string {
	return strings.TrimRight(s.baseURL, "/") + "/" + name
}

// Save uploads content as name.
func (s *StorageSink) Save(ctx context.Context, name string, content []byte) error {
	URL := s.URL(name)
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to save %s: %w", URL, err)
	}
	return nil
}

// NewStorageSink creates a sink writing under baseURL; a nil fs uses afs.New().
func NewStorageSink(fs afs.Service, baseURL string) *StorageSink {
	if fs == nil {
		fs = afs.New()
	}
	return &StorageSink{fs: fs, baseURL: baseURL}
}
