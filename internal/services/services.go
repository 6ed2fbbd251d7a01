package services

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/internal/config"
)

// Services is the registry handed to the HTTP layer.
type Services struct {
	Engine    *RecommendationEngine
	Auth      *AuthService
	RateLimit *RateLimitService
}

// New wires the service registry. redisClient and sink may be nil, in
// which case rate limiting and event publishing are disabled.
func New(
	cfg *config.Config,
	logger *logrus.Logger,
	cat *catalog.Catalog,
	redisClient *redis.Client,
	sink InteractionSink,
	metrics *Metrics,
) (*Services, error) {
	engine, err := NewRecommendationEngine(cat, cfg.Recommendation.Lambda, sink, metrics, logger)
	if err != nil {
		return nil, err
	}

	svcs := &Services{
		Engine: engine,
		Auth:   NewAuthService(&cfg.Auth),
	}
	if redisClient != nil {
		svcs.RateLimit = NewRateLimitService(&cfg.Auth.RateLimit, logger, redisClient)
	}
	return svcs, nil
}
