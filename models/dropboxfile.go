// Package models holds the normalized file record the tasks expose to flows.
package models

import (
	"time"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
)

// Entry types of a DropboxFile.
const (
	TypeFile   = "file"
	TypeFolder = "folder"
)

// DropboxFile is the single record shape every task output uses for remote
// entries, regardless of whether the API reported file or folder metadata.
// ID is the lowercase canonical path and serves as the stable identifier;
// Path preserves the original casing. Size and Modified are nil for folders.
type DropboxFile struct {
	Name     string     `json:"name"`
	ID       string     `json:"id"`
	Path     string     `json:"path"`
	Type     string     `json:"type"`
	Size     *uint64    `json:"size,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
}

// FromMetadata converts an API metadata object into a DropboxFile. The
// file-vs-folder distinction is resolved here, once, at the API boundary.
func FromMetadata(meta *dropbox.Metadata) DropboxFile {
	file := DropboxFile{
		Name: meta.Name,
		ID:   meta.PathLower,
		Path: meta.PathDisplay,
		Type: TypeFolder,
	}

	if meta.IsFile() {
		file.Type = TypeFile
		size := meta.Size
		file.Size = &size
		if !meta.ClientModified.IsZero() {
			modified := meta.ClientModified
			file.Modified = &modified
		} else if !meta.ServerModified.IsZero() {
			modified := meta.ServerModified
			file.Modified = &modified
		}
	}

	return file
}
