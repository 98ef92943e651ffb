// Package dropbox implements a thin client for the Dropbox HTTP v2 API,
// covering the file operations the plugin tasks need: upload, download,
// move, copy, delete, folder creation, metadata lookup, folder listing and
// search. Pagination is surfaced as Page values with an opaque cursor;
// callers drive the continue loop.
package dropbox

import (
	"context"
	"io"
)

// Client is the operation surface the tasks run against. HTTPClient is the
// production implementation; tests substitute a mock.
type Client interface {
	// Upload writes content to path. Behavior on an existing destination is
	// controlled by mode and autorename.
	Upload(ctx context.Context, path string, mode WriteMode, autorename bool, content io.Reader) (*Metadata, error)

	// Download fetches the file at path. The caller must close the returned
	// reader.
	Download(ctx context.Context, path string) (*Metadata, io.ReadCloser, error)

	// Move relocates a file or folder from one path to another.
	Move(ctx context.Context, fromPath, toPath string, opts RelocationOptions) (*Metadata, error)

	// Copy duplicates a file or folder to a new path.
	Copy(ctx context.Context, fromPath, toPath string, opts RelocationOptions) (*Metadata, error)

	// Delete removes the file or folder at path.
	Delete(ctx context.Context, path string) (*Metadata, error)

	// CreateFolder creates a folder at path.
	CreateFolder(ctx context.Context, path string, autorename bool) (*Metadata, error)

	// GetMetadata returns metadata for the file or folder at path.
	GetMetadata(ctx context.Context, path string, includeMediaInfo bool) (*Metadata, error)

	// ListFolder starts an enumeration of the folder at path. Use "" for the
	// account root. limit caps the page size when non-zero.
	ListFolder(ctx context.Context, path string, recursive bool, limit uint32) (*Page, error)

	// ListFolderContinue fetches the next page of a ListFolder enumeration.
	ListFolderContinue(ctx context.Context, cursor string) (*Page, error)

	// Search starts a search_v2 enumeration for query.
	Search(ctx context.Context, query string, opts SearchOptions) (*Page, error)

	// SearchContinue fetches the next page of a Search enumeration.
	SearchContinue(ctx context.Context, cursor string) (*Page, error)
}
