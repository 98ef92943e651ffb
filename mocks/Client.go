// Package mocks provides testify mock implementations of the plugin's
// collaborator interfaces for use in unit tests.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
)

// Client is a mock implementation of dropbox.Client.
type Client struct {
	mock.Mock
}

func (m *Client) Upload(ctx context.Context, path string, mode dropbox.WriteMode, autorename bool, content io.Reader) (*dropbox.Metadata, error) {
	args := m.Called(ctx, path, mode, autorename, content)
	return metadataOf(args), args.Error(1)
}

func (m *Client) Download(ctx context.Context, path string) (*dropbox.Metadata, io.ReadCloser, error) {
	args := m.Called(ctx, path)
	var body io.ReadCloser
	if rc := args.Get(1); rc != nil {
		body = rc.(io.ReadCloser)
	}
	return metadataOf(args), body, args.Error(2)
}

func (m *Client) Move(ctx context.Context, fromPath, toPath string, opts dropbox.RelocationOptions) (*dropbox.Metadata, error) {
	args := m.Called(ctx, fromPath, toPath, opts)
	return metadataOf(args), args.Error(1)
}

func (m *Client) Copy(ctx context.Context, fromPath, toPath string, opts dropbox.RelocationOptions) (*dropbox.Metadata, error) {
	args := m.Called(ctx, fromPath, toPath, opts)
	return metadataOf(args), args.Error(1)
}

func (m *Client) Delete(ctx context.Context, path string) (*dropbox.Metadata, error) {
	args := m.Called(ctx, path)
	return metadataOf(args), args.Error(1)
}

func (m *Client) CreateFolder(ctx context.Context, path string, autorename bool) (*dropbox.Metadata, error) {
	args := m.Called(ctx, path, autorename)
	return metadataOf(args), args.Error(1)
}

func (m *Client) GetMetadata(ctx context.Context, path string, includeMediaInfo bool) (*dropbox.Metadata, error) {
	args := m.Called(ctx, path, includeMediaInfo)
	return metadataOf(args), args.Error(1)
}

func (m *Client) ListFolder(ctx context.Context, path string, recursive bool, limit uint32) (*dropbox.Page, error) {
	args := m.Called(ctx, path, recursive, limit)
	return pageOf(args), args.Error(1)
}

func (m *Client) ListFolderContinue(ctx context.Context, cursor string) (*dropbox.Page, error) {
	args := m.Called(ctx, cursor)
	return pageOf(args), args.Error(1)
}

func (m *Client) Search(ctx context.Context, query string, opts dropbox.SearchOptions) (*dropbox.Page, error) {
	args := m.Called(ctx, query, opts)
	return pageOf(args), args.Error(1)
}

func (m *Client) SearchContinue(ctx context.Context, cursor string) (*dropbox.Page, error) {
	args := m.Called(ctx, cursor)
	return pageOf(args), args.Error(1)
}

func metadataOf(args mock.Arguments) *dropbox.Metadata {
	if meta := args.Get(0); meta != nil {
		return meta.(*dropbox.Metadata)
	}
	return nil
}

func pageOf(args mock.Arguments) *dropbox.Page {
	if page := args.Get(0); page != nil {
		return page.(*dropbox.Page)
	}
	return nil
}
