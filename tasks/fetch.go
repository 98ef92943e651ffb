package tasks

import (
	"context"
	"os"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// FetchType selects the output shape of a paginated operation.
type FetchType string

const (
	// FetchTypeOne returns only the first entry found.
	FetchTypeOne FetchType = "FETCH_ONE"
	// FetchTypeAll returns every entry in memory.
	FetchTypeAll FetchType = "FETCH"
	// FetchTypeStore persists every entry to internal storage and returns
	// the blob URI.
	FetchTypeStore FetchType = "STORE"
)

// ParseFetchType validates a configured fetch type literal. Blank input
// selects the default, FETCH.
func ParseFetchType(value string) (FetchType, error) {
	switch FetchType(value) {
	case "":
		return FetchTypeAll, nil
	case FetchTypeOne, FetchTypeAll, FetchTypeStore:
		return FetchType(value), nil
	default:
		return "", validationf("invalid 'fetchType': %s. Must be 'FETCH_ONE', 'FETCH' or 'STORE'", value)
	}
}

// PagedOutput is the result of a paginated operation. Exactly one of Rows,
// Row or URI is populated, matching the fetch type; Size always carries the
// number of entries accumulated.
type PagedOutput struct {
	// Rows holds every entry, in API order. Populated for FETCH.
	Rows []models.DropboxFile `json:"rows,omitempty"`
	// Row holds the first entry found, if any. Populated for FETCH_ONE.
	Row *models.DropboxFile `json:"row,omitempty"`
	// URI addresses the stored entries blob. Populated for STORE.
	URI string `json:"uri,omitempty"`
	// Size is the number of entries accumulated.
	Size int64 `json:"size"`
}

// pageFunc fetches one result page. An empty cursor requests the first page.
type pageFunc func(cursor string) (*dropbox.Page, error)

// collectPages drives a cursor pagination loop to completion and shapes the
// result per fetchType. For FETCH_ONE the loop stops after the first
// non-empty page rather than after the first entry; truncation to one row
// happens when the output is built. An empty page with more results pending
// is not the end of the enumeration. A page failure aborts the whole
// operation; nothing is committed to storage on any failure path.
func collectPages(ctx context.Context, rc *runner.Context, fetchType FetchType, fetch pageFunc) (*PagedOutput, error) {
	var entries []models.DropboxFile

	cursor := ""
	for {
		page, err := fetch(cursor)
		if err != nil {
			return nil, err
		}

		for i := range page.Entries {
			entries = append(entries, models.FromMetadata(&page.Entries[i]))
		}

		if fetchType == FetchTypeOne && len(entries) > 0 {
			break
		}
		if !page.HasMore {
			break
		}
		cursor = page.Cursor
	}

	out := &PagedOutput{Size: int64(len(entries))}

	switch fetchType {
	case FetchTypeOne:
		if len(entries) > 0 {
			out.Row = &entries[0]
		}
	case FetchTypeAll:
		out.Rows = entries
	case FetchTypeStore:
		uri, err := storeRows(ctx, rc, entries)
		if err != nil {
			return nil, err
		}
		out.URI = uri
	}

	return out, nil
}

// storeRows persists entries as line-delimited records in a new internal
// storage blob, buffering through a working-dir temp file that is always
// removed.
func storeRows(ctx context.Context, rc *runner.Context, entries []models.DropboxFile) (string, error) {
	store, err := rc.Storage()
	if err != nil {
		return "", newError(KindStorageIO, err.Error(), err)
	}

	tmp, err := rc.TempFile()
	if err != nil {
		return "", newError(KindStorageIO, "failed to buffer results: "+err.Error(), err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	for _, entry := range entries {
		if err := models.WriteRow(tmp, entry); err != nil {
			return "", newError(KindStorageIO, "failed to serialize results: "+err.Error(), err)
		}
	}

	if _, err := tmp.Seek(0, 0); err != nil {
		return "", newError(KindStorageIO, "failed to buffer results: "+err.Error(), err)
	}

	uri, err := store.Put(ctx, tmp)
	if err != nil {
		return "", newError(KindStorageIO, "failed to store results: "+err.Error(), err)
	}

	return uri, nil
}
