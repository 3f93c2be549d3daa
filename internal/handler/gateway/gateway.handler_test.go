package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	types "timeservice/internal/common/type"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/pkg/middleware"
	"timeservice/internal/service/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUpstream struct {
	fetchTimeFunc func(ctx context.Context, timezone, requestID string) (*types.TimeResult, error)
}

func (m *mockUpstream) FetchTime(ctx context.Context, timezone, requestID string) (*types.TimeResult, error) {
	return m.fetchTimeFunc(ctx, timezone, requestID)
}

func newTestRouter(t *testing.T, up upstream.IService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.RequestInit())
	NewHandler(up, logger.NewWithWriter("api1", io.Discard)).NewRoutes(r)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetTimeRewrapsProviderResult(t *testing.T) {
	var forwardedTimezone, forwardedID string
	up := &mockUpstream{
		fetchTimeFunc: func(ctx context.Context, timezone, requestID string) (*types.TimeResult, error) {
			forwardedTimezone = timezone
			forwardedID = requestID
			return &types.TimeResult{
				Timestamp: "2026-08-31T06:00:00-04:00",
				Timezone:  timezone,
				RequestID: "provider-minted-id",
				Source:    types.SourceProvider,
			}, nil
		},
	}
	r := newTestRouter(t, up)

	w := doGet(r, "/time?timezone=EST")
	require.Equal(t, http.StatusOK, w.Code)

	var result types.TimeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, "EST", forwardedTimezone)
	assert.Equal(t, "2026-08-31T06:00:00-04:00", result.Timestamp)
	assert.Equal(t, "EST", result.Timezone)
	assert.Equal(t, types.SourceGateway, result.Source)

	// the gateway keeps its own minted id, not whatever the provider echoed
	assert.Equal(t, forwardedID, result.RequestID)
	assert.NotEqual(t, "provider-minted-id", result.RequestID)
}

func TestGetTimeDefaultsTimezoneToUTC(t *testing.T) {
	var forwardedTimezone string
	up := &mockUpstream{
		fetchTimeFunc: func(ctx context.Context, timezone, requestID string) (*types.TimeResult, error) {
			forwardedTimezone = timezone
			return &types.TimeResult{
				Timestamp: "2026-08-31T10:00:00Z",
				Timezone:  timezone,
				RequestID: requestID,
				Source:    types.SourceProvider,
			}, nil
		},
	}
	r := newTestRouter(t, up)

	w := doGet(r, "/time")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UTC", forwardedTimezone)
}

func TestGetTimeErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "provider unreachable",
			err:          upstream.ErrUnavailable,
			expectedCode: http.StatusServiceUnavailable,
			expectedMsg:  "Failed to connect to API2",
		},
		{
			name:         "provider returned error status",
			err:          &upstream.StatusError{Code: http.StatusInternalServerError},
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "API2 returned status: 500",
		},
		{
			name:         "provider response unparseable",
			err:          upstream.ErrMalformedResponse,
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Failed to parse response from API2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var forwardedID string
			up := &mockUpstream{
				fetchTimeFunc: func(ctx context.Context, timezone, requestID string) (*types.TimeResult, error) {
					forwardedID = requestID
					return nil, tt.err
				},
			}
			r := newTestRouter(t, up)

			w := doGet(r, "/time?timezone=UTC")
			require.Equal(t, tt.expectedCode, w.Code)

			var result types.ErrorResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tt.expectedMsg, result.Error)
			assert.Equal(t, forwardedID, result.RequestID)

			_, err := time.Parse(time.RFC3339Nano, result.Timestamp)
			assert.NoError(t, err)
		})
	}
}

func TestGetTimeWrappedErrorsStillClassify(t *testing.T) {
	up := &mockUpstream{
		fetchTimeFunc: func(ctx context.Context, timezone, requestID string) (*types.TimeResult, error) {
			return nil, errors.Join(upstream.ErrUnavailable, errors.New("dial tcp: connection refused"))
		},
	}
	r := newTestRouter(t, up)

	w := doGet(r, "/time")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoot(t *testing.T) {
	r := newTestRouter(t, &mockUpstream{})

	w := doGet(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API1 - Time Service Gateway", w.Body.String())
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &mockUpstream{})

	w := doGet(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var health types.HealthResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "api1", health.Service)
}
