package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawmart/pawmart-server/internal/service"
)

func TestServiceError_StatusMapping(t *testing.T) {
	t.Parallel()

	l := slog.Default()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation", err: fmt.Errorf("%w: email required", service.ErrValidation), wantCode: http.StatusBadRequest},
		{name: "forbidden", err: fmt.Errorf("%w: you do not own this listing", service.ErrForbidden), wantCode: http.StatusForbidden},
		{name: "not found", err: fmt.Errorf("%w: listing", service.ErrNotFound), wantCode: http.StatusNotFound},
		{name: "client disconnected", err: mongo.ErrClientDisconnected, wantCode: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			he := serviceError(l, "test_failed", tt.err, false)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestServiceError_NotFoundMessage(t *testing.T) {
	t.Parallel()

	he := serviceError(slog.Default(), "test_failed", fmt.Errorf("%w: listing", service.ErrNotFound), false)
	assert.Equal(t, "listing not found", he.Message)
}

func TestServiceError_DetailHiddenOutsideDevelopment(t *testing.T) {
	t.Parallel()

	err := errors.New("connection string leaked")

	he := serviceError(slog.Default(), "test_failed", err, false)
	require.Equal(t, "internal server error", he.Message)

	he = serviceError(slog.Default(), "test_failed", err, true)
	require.Equal(t, "connection string leaked", he.Message)
}
