package blogservice

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMediaHost struct {
	mock.Mock
}

func (m *MockMediaHost) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}
