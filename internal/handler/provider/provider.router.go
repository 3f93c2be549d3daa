package provider

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.Engine) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/time", h.GetTime)
}
