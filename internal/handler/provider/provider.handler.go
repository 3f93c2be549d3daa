package provider

import (
	"net/http"
	"time"
	types "timeservice/internal/common/type"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/service/clock"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	clock clock.IService
	log   *logger.Logger
}

type IHandler interface {
	NewRoutes(e *gin.Engine)
	Root(c *gin.Context)
	Health(c *gin.Context)
	GetTime(c *gin.Context)
}

func NewHandler(clock clock.IService, log *logger.Logger) IHandler {
	return &Handler{clock: clock, log: log}
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "API2 - Time Service Provider")
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResult{
		Status:    "healthy",
		Service:   "api2",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// GetTime never fails: an unknown timezone silently resolves to UTC and a
// missing request_id falls back to the id minted by RequestInit.
func (h *Handler) GetTime(c *gin.Context) {
	var query types.TimeQuery
	_ = c.ShouldBindQuery(&query)

	requestID := query.RequestID
	if requestID == "" {
		requestID = c.GetString("requestId")
	}
	timezone := query.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	c.JSON(http.StatusOK, h.clock.Now(timezone, requestID))
}
