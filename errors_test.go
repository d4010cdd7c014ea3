package session

import (
	"errors"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRejectionServerMessagePassesVerbatim(t *testing.T) {
	err := serverError("email already registered", http.StatusConflict, "/api/auth/register")
	assert.Equal(t, "email already registered", normalizeRejection(err))
	assert.True(t, IsServerReported(err))
}

func TestNormalizeRejectionTransportFailureCollapsesToFallback(t *testing.T) {
	err := transportError(errors.New("connection refused"), "/api/auth/login")
	assert.Equal(t, FallbackErrorMessage, normalizeRejection(err))
	assert.False(t, IsServerReported(err))
}

func TestNormalizeRejectionStatusWithoutBodyCollapsesToFallback(t *testing.T) {
	err := statusError(http.StatusBadGateway, "/api/users/admin/getAllUsers")
	assert.Equal(t, FallbackErrorMessage, normalizeRejection(err))
}

func TestNormalizeRejectionPlainErrorCollapsesToFallback(t *testing.T) {
	assert.Equal(t, FallbackErrorMessage, normalizeRejection(errors.New("boom")))
	assert.Equal(t, FallbackErrorMessage, normalizeRejection(nil))
}

func TestCategoryForStatus(t *testing.T) {
	cases := []struct {
		status   int
		expected goerrors.Category
	}{
		{http.StatusUnauthorized, goerrors.CategoryAuth},
		{http.StatusForbidden, goerrors.CategoryAuth},
		{http.StatusNotFound, goerrors.CategoryNotFound},
		{http.StatusConflict, goerrors.CategoryConflict},
		{http.StatusBadRequest, goerrors.CategoryValidation},
		{http.StatusInternalServerError, goerrors.CategoryInternal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, categoryForStatus(tc.status), "status %d", tc.status)
	}
}
