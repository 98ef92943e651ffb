package tasks

import (
	"bytes"
	"context"
	"testing"

	"github.com/flowmech/flow-plugin-dropbox/runner"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage/local"
)

// testContext returns a runner context backed by a temp-dir local store,
// plus the store for seeding and inspecting blobs.
func testContext(t *testing.T, opts ...runner.Option) (*runner.Context, storage.Store) {
	t.Helper()

	store, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}

	opts = append([]runner.Option{
		runner.WithStorage(store),
		runner.WithWorkingDir(t.TempDir()),
	}, opts...)

	return runner.NewContext(opts...), store
}

// seedBlob stores content and returns its URI.
func seedBlob(t *testing.T, store storage.Store, content string) string {
	t.Helper()

	uri, err := store.Put(context.Background(), bytes.NewBufferString(content))
	if err != nil {
		t.Fatalf("seed blob: %v", err)
	}
	return uri
}
