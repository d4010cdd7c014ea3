package session

import (
	"context"
	"fmt"
)

// Logger is the minimal logging surface the store needs. Adapters for
// structured loggers live next to it, see ZerologAdapter.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Transport performs HTTP verbs against the storefront API. Implementations
// decode the success body into out (when out is non nil) and return a
// categorized error for transport or server failures.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// TokenStore reads and writes the single persisted credential
type TokenStore interface {
	Read() (string, bool)
	Write(token string) error
	Clear() error
}

// Command is a named asynchronous operation dispatched through the store.
// Dispatch raises the pending event synchronously, runs execute, and applies
// the fulfilled or rejected event with the result.
type Command interface {
	Type() string
	Validate() error
	execute(ctx context.Context, deps *commandDeps) (any, error)
}

// commandDeps are the collaborators every command runs against
type commandDeps struct {
	transport   Transport
	tokens      TokenStore
	credentials *Credentials
	logger      Logger
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] SESSION "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] SESSION "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] SESSION "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
