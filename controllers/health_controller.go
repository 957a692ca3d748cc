package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController expone /health y /ping. El ping delega en el backend de
// datos activo (REST o Postgres) vía la función inyectada.
type HealthController struct {
	ping func(ctx context.Context) error
}

func NewHealthController(ping func(ctx context.Context) error) *HealthController {
	return &HealthController{ping: ping}
}

// GET /ping
func (ctl *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// GET /health
func (ctl *HealthController) Health(c *gin.Context) {
	if ctl.ping != nil {
		if err := ctl.ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"detalle": err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
