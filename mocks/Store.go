package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of storage.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	args := m.Called(ctx, uri)
	var reader io.ReadCloser
	if r := args.Get(0); r != nil {
		reader = r.(io.ReadCloser)
	}
	return reader, args.Error(1)
}

func (m *Store) Put(ctx context.Context, r io.Reader) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}
