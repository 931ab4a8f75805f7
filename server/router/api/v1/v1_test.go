package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/server/middleware"
)

func newTestContext(t *testing.T, method, target string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestResolveUser(t *testing.T) {
	service := &APIV1Service{}
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("missing header rejected", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/meetings", nil)
		require.NoError(t, service.resolveUser(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-numeric header rejected", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/meetings", map[string]string{userIDHeader: "alice"})
		require.NoError(t, service.resolveUser(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid header passes through", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/meetings", map[string]string{userIDHeader: "42"})
		require.NoError(t, service.resolveUser(next)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int32(42), service.userID(c))
	})
}

func TestSyncRateLimit(t *testing.T) {
	service := &APIV1Service{rateLimiter: middleware.NewRateLimiter()}
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	var last int
	for i := 0; i < 20; i++ {
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/calendar/sync", nil)
		c.Set(userIDContextKey, int32(1))
		require.NoError(t, service.syncRateLimit(next)(c))
		last = rec.Code
		if last == http.StatusTooManyRequests {
			break
		}
	}
	require.Equal(t, http.StatusTooManyRequests, last)

	// A different user has its own budget.
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/calendar/sync", nil)
	c.Set(userIDContextKey, int32(2))
	require.NoError(t, service.syncRateLimit(next)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReplyError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{apperrors.NotFound("agent 1 not found"), http.StatusNotFound},
		{apperrors.InvalidArgument("bad input"), http.StatusBadRequest},
		{apperrors.TransientSource("source down", nil), http.StatusBadGateway},
		{apperrors.LLMUnavailable("backend down"), http.StatusBadGateway},
		{apperrors.GenerationTimeout(nil), http.StatusGatewayTimeout},
		{apperrors.RateLimited("slow down"), http.StatusTooManyRequests},
		{apperrors.Internal("boom", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		c, rec := newTestContext(t, http.MethodGet, "/", nil)
		require.NoError(t, replyError(c, tt.err))
		require.Equal(t, tt.wantStatus, rec.Code, "error: %v", tt.err)
	}

	t.Run("internal cause is not leaked", func(t *testing.T) {
		c, rec := newTestContext(t, http.MethodGet, "/", nil)
		require.NoError(t, replyError(c, apperrors.Internal("db exploded", nil)))
		require.NotContains(t, rec.Body.String(), "db exploded")
	})
}

func TestPathID(t *testing.T) {
	e := echo.New()

	makeContext := func(id string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(id)
		return c
	}

	id, err := pathID(makeContext("7"))
	require.NoError(t, err)
	require.Equal(t, int32(7), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := pathID(makeContext(bad))
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument), "id: %q", bad)
	}
}
