// Package storage defines the engine's internal blob store: the place task
// outputs are persisted and task inputs are read back from. Blobs are
// addressed by opaque flowmech:// URIs; tasks never see driver details.
//
// Two drivers exist: local (working-directory backed, the default for tests
// and the CLI) and minio (any S3-compatible bucket).
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Scheme is the URI scheme reserved for internal-storage references.
const Scheme = "flowmech"

const schemePrefix = Scheme + "://"

// Store reads and writes engine-internal blobs.
type Store interface {
	// Get opens the blob addressed by uri. The caller must close the reader.
	Get(ctx context.Context, uri string) (io.ReadCloser, error)

	// Put persists everything read from r as a new blob and returns its URI.
	Put(ctx context.Context, r io.Reader) (string, error)
}

// IsReference reports whether value is an internal-storage URI rather than a
// plain string.
func IsReference(value string) bool {
	return strings.HasPrefix(value, schemePrefix)
}

// URIFor builds the URI for a storage object key.
func URIFor(key string) string {
	return schemePrefix + key
}

// KeyFor extracts the object key from a storage URI.
func KeyFor(uri string) (string, error) {
	if !IsReference(uri) {
		return "", fmt.Errorf("not an internal storage URI: %s", uri)
	}
	key := strings.TrimPrefix(uri, schemePrefix)
	if key == "" {
		return "", fmt.Errorf("storage URI has no object key: %s", uri)
	}
	return key, nil
}
