package mocks

import (
	"context"

	"p5-manager/core/registry"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of registry.Client
type Client struct {
	mock.Mock
}

func (m *Client) Versions(ctx context.Context) (map[string]registry.Release, error) {
	args := m.Called(ctx)
	if versions, ok := args.Get(0).(map[string]registry.Release); ok {
		return versions, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Download(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
