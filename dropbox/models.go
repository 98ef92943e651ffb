package dropbox

import "time"

// Tag values reported in the ".tag" field of metadata objects.
const (
	TagFile    = "file"
	TagFolder  = "folder"
	TagDeleted = "deleted"
)

// WriteMode selects how an upload behaves when the destination already exists.
// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-upload
type WriteMode string

const (
	WriteModeAdd       WriteMode = "add"
	WriteModeOverwrite WriteMode = "overwrite"
)

// Metadata represents one file or folder entry as returned by the Dropbox v2
// API (list_folder, get_metadata, move_v2, search_v2, ...).
// Size and the modified timestamps are only set when Tag is "file".
// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-get_metadata
type Metadata struct {
	Tag            string    `json:".tag"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PathLower      string    `json:"path_lower"`
	PathDisplay    string    `json:"path_display"`
	ClientModified time.Time `json:"client_modified,omitempty"`
	ServerModified time.Time `json:"server_modified,omitempty"`
	Size           uint64    `json:"size,omitempty"`
	ContentHash    string    `json:"content_hash,omitempty"`
}

// IsFile reports whether the entry is a regular file.
func (m *Metadata) IsFile() bool { return m.Tag == TagFile }

// IsFolder reports whether the entry is a folder.
func (m *Metadata) IsFolder() bool { return m.Tag == TagFolder }

// Page is one page of a paginated listing or search result. Cursor continues
// the enumeration via ListFolderContinue/SearchContinue while HasMore is true.
// A page may be empty even when HasMore is true.
type Page struct {
	Entries []Metadata
	Cursor  string
	HasMore bool
}

// RelocationOptions tune move_v2 and copy_v2 behavior.
type RelocationOptions struct {
	Autorename             bool
	AllowOwnershipTransfer bool
}

// SearchOptions scope a search_v2 call. A zero value searches the whole
// account with server-side defaults.
type SearchOptions struct {
	// Path restricts the search to a subtree. Empty means account-wide.
	Path string
	// MaxResults caps the number of matches per page (server default 100).
	MaxResults uint64
	// FileExtensions restricts matches to the given extensions, e.g. "csv".
	FileExtensions []string
}
