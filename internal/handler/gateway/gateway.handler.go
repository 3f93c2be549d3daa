package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	types "timeservice/internal/common/type"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/service/upstream"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	upstream upstream.IService
	log      *logger.Logger
}

type IHandler interface {
	NewRoutes(e *gin.Engine)
	Root(c *gin.Context)
	Health(c *gin.Context)
	GetTime(c *gin.Context)
}

func NewHandler(upstream upstream.IService, log *logger.Logger) IHandler {
	return &Handler{upstream: upstream, log: log}
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "API1 - Time Service Gateway")
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResult{
		Status:    "healthy",
		Service:   "api1",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// GetTime forwards the request to the provider and re-wraps the answer under
// the gateway's own request id. External callers cannot supply a request_id
// on this hop; the id minted by RequestInit is the correlation key.
func (h *Handler) GetTime(c *gin.Context) {
	requestID := c.GetString("requestId")

	var query types.TimeQuery
	_ = c.ShouldBindQuery(&query)
	timezone := query.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	h.log.Info.Printf("request_id=%s timezone=%s received time request", requestID, timezone)

	result, err := h.upstream.FetchTime(c.Request.Context(), timezone, requestID)
	if err != nil {
		code, message := classify(err)
		c.JSON(code, types.ErrorResult{
			Error:     message,
			RequestID: requestID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
		return
	}

	c.JSON(http.StatusOK, types.TimeResult{
		Timestamp: result.Timestamp,
		Timezone:  result.Timezone,
		RequestID: requestID,
		Source:    types.SourceGateway,
	})
}

func classify(err error) (int, string) {
	var statusErr *upstream.StatusError
	switch {
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, fmt.Sprintf("API2 returned status: %d", statusErr.Code)
	case errors.Is(err, upstream.ErrUnavailable):
		return http.StatusServiceUnavailable, "Failed to connect to API2"
	default:
		return http.StatusInternalServerError, "Failed to parse response from API2"
	}
}
