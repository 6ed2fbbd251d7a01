package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/config"
	"github.com/modaiq/stylerec/internal/services"
	"github.com/modaiq/stylerec/pkg/models"
)

type RecommendationHandler struct {
	engine    services.Recommender
	config    *config.RecommendationConfig
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewRecommendationHandler(
	engine services.Recommender,
	cfg *config.RecommendationConfig,
	logger *logrus.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		engine:    engine,
		config:    cfg,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *RecommendationHandler) Get(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind recommendation request")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Invalid request format",
				"details": err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "Request validation failed",
				"details": err.Error(),
			},
		})
		return
	}

	count := req.NumRecommendations
	if count <= 0 {
		count = h.config.DefaultCount
	}
	if h.config.MaxCount > 0 && count > h.config.MaxCount {
		count = h.config.MaxCount
	}

	recommendations, coldStart := h.engine.GetRecommendations(
		c.Request.Context(), req.UserID, req.Colors, req.Categories, count)

	c.JSON(http.StatusOK, models.RecommendationResponse{
		UserID:          req.UserID,
		Recommendations: recommendations,
		ColdStart:       coldStart,
		GeneratedAt:     time.Now(),
	})
}
