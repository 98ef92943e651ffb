// Package plugin provides the Dropbox file tasks for the Flowmech workflow
// engine: upload, download, move, copy, delete, folder creation, metadata
// lookup, listing and search.
//
// Each task wraps exactly one Dropbox API operation. Path inputs accept a
// literal path or a flowmech:// internal-storage URI of a blob containing
// the path, so a task can consume paths produced by upstream tasks. Listing
// and search support three fetch shapes: the first entry, all entries in
// memory, or all entries persisted to internal storage as line-delimited
// records.
package plugin
