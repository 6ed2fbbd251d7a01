package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/services"
	"github.com/modaiq/stylerec/pkg/models"
)

type InteractionHandler struct {
	engine    services.Recommender
	logger    *logrus.Logger
	validator *validator.Validate
}

func NewInteractionHandler(engine services.Recommender, logger *logrus.Logger) *InteractionHandler {
	return &InteractionHandler{
		engine:    engine,
		logger:    logger,
		validator: validator.New(),
	}
}

// Record accepts a rating as an integer 1-5 or as one of the reaction
// strings; models.Rating normalizes both to the integer scale before the
// engine sees the value.
func (h *InteractionHandler) Record(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to bind interaction request")
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

	total, err := h.engine.RecordInteraction(c.Request.Context(), req.UserID, req.ProductID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_RATING",
					"message": "Rating must be between 1 and 5",
				},
			})
		case errors.Is(err, services.ErrUnknownProduct):
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":    "UNKNOWN_PRODUCT",
					"message": "Product not found in catalog",
				},
			})
		default:
			h.logger.WithError(err).Error("Failed to record interaction")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERACTION_FAILED",
					"message": "Failed to record interaction",
				},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, models.InteractionResponse{
		Accepted:          true,
		TotalInteractions: total,
	})
}
