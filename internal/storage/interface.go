package storage

import (
	"context"
	"io"
)

// Interface abstracts the document blob store. The default backend keeps
// files on the local filesystem; a cloud backend can be swapped in without
// touching the services.
type Interface interface {
	// Save writes the blob under key, creating parent directories as needed.
	Save(ctx context.Context, key string, reader io.Reader) error

	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the blob is present and its size in bytes.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Open returns a reader over the blob. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// List returns the keys of every stored blob.
	List(ctx context.Context) ([]string, error)
}
