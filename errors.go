package session

import (
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// ErrEmptyPatch is returned when a profile update carries no fields to change
var ErrEmptyPatch = errors.New("profile patch has no fields set")

// FallbackErrorMessage is the fixed message every command rejects with when
// the failure carries no server-reported message. The storefront web client
// shipped with this exact string, typo and all, and consumers match on it.
const FallbackErrorMessage = "somthing went wrong :("

const (
	textCodeServerMessage   = "SERVER_REPORTED"
	textCodeTransportFailed = "TRANSPORT_FAILED"
	textCodeDecodeFailed    = "RESPONSE_DECODE_FAILED"
)

// serverError builds the error for a non-2xx response whose body carried a
// structured message. The message is surfaced verbatim to consumers.
func serverError(msg string, status int, path string) *goerrors.Error {
	return goerrors.New(msg, categoryForStatus(status)).
		WithTextCode(textCodeServerMessage).
		WithCode(status).
		WithMetadata(map[string]any{
			"status": status,
			"path":   path,
		})
}

// transportError wraps a network-level failure with no structured body
func transportError(err error, path string) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryOperation, "transport request failed").
		WithTextCode(textCodeTransportFailed).
		WithMetadata(map[string]any{"path": path})
}

// statusError builds the error for a non-2xx response with no usable message
func statusError(status int, path string) *goerrors.Error {
	return goerrors.New("unexpected response status", categoryForStatus(status)).
		WithTextCode(textCodeTransportFailed).
		WithCode(status).
		WithMetadata(map[string]any{
			"status": status,
			"path":   path,
		})
}

func categoryForStatus(status int) goerrors.Category {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return goerrors.CategoryAuth
	case status == http.StatusNotFound:
		return goerrors.CategoryNotFound
	case status == http.StatusConflict:
		return goerrors.CategoryConflict
	case status >= 400 && status < 500:
		return goerrors.CategoryValidation
	default:
		return goerrors.CategoryInternal
	}
}

// normalizeRejection funnels every command failure into the single error
// string consumers read. Server-reported messages pass through verbatim,
// everything else collapses into the fixed fallback. The rule is uniform
// across commands, no command defines its own fallback text.
func normalizeRejection(err error) string {
	if err == nil {
		return FallbackErrorMessage
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		if richErr.TextCode == textCodeServerMessage && richErr.Message != "" {
			return richErr.Message
		}
	}

	return FallbackErrorMessage
}

// IsServerReported checks whether the failure carried a structured message
// from the API rather than a bare transport error
func IsServerReported(err error) bool {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.TextCode == textCodeServerMessage
	}
	return false
}
