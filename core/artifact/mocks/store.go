package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of artifact.Store
type Store struct {
	mock.Mock
}

func (m *Store) Put(ctx context.Context, name, contentType string, data []byte) error {
	args := m.Called(ctx, name, contentType, data)
	return args.Error(0)
}

func (m *Store) Get(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
