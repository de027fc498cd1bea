package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock ImageFinder
type ImageFinder struct {
	mock.Mock
}

func (m *ImageFinder) FindImageURL(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
