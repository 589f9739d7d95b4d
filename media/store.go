// Package media stores site images and provides the operator image tools:
// placeholder generation, listing and replacement with backups.
package media

import (
	"context"
	"io"
)

// Object is one stored file. Name is slash-separated and relative to the store root.
type Object struct {
	Name string
	Size int64
}

// Store is a flat namespace of media files on local disk or in S3.
type Store interface {
	// List returns objects whose name starts with prefix, sorted by name.
	List(ctx context.Context, prefix string) ([]Object, error)
	Exists(ctx context.Context, name string) (bool, error)
	// Open fails with errs.ErrFileMissing when name is absent.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Put(ctx context.Context, name string, r io.Reader) error
	Copy(ctx context.Context, src, dst string) error
}
