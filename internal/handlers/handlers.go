package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/internal/config"
	"github.com/modaiq/stylerec/internal/services"
)

type Handlers struct {
	Health         *HealthHandler
	Recommendation *RecommendationHandler
	Interaction    *InteractionHandler
}

func New(logger *logrus.Logger, cfg *config.Config, svcs *services.Services, cat *catalog.Catalog) *Handlers {
	return &Handlers{
		Health:         NewHealthHandler(logger, cat),
		Recommendation: NewRecommendationHandler(svcs.Engine, &cfg.Recommendation, logger),
		Interaction:    NewInteractionHandler(svcs.Engine, logger),
	}
}
