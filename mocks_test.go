package session_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockTransport implements session.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func (m *MockTransport) Post(ctx context.Context, path string, body, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *MockTransport) Put(ctx context.Context, path string, body, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *MockTransport) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// respondJSON round-trips v through JSON into a command's out parameter,
// the same shape the real transport produces
func respondJSON(out, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		panic(err)
	}
}
