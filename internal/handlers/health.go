package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/catalog"
)

type HealthHandler struct {
	logger  *logrus.Logger
	catalog *catalog.Catalog
	started time.Time
}

func NewHealthHandler(logger *logrus.Logger, cat *catalog.Catalog) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		catalog: cat,
		started: time.Now(),
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"catalog_size":   h.catalog.Len(),
		"embedding_dim":  h.catalog.Dimension(),
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}
