// File: internal/handler/ping_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pangkat-auth/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("healthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(context.Context) error { return nil },
		}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})

	t.Run("database down", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(context.Context) error { return errors.New("dial refused") },
		}
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})
}
