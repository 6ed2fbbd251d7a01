package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/config"
	"github.com/modaiq/stylerec/pkg/models"
)

// InteractionMessage is the event published for each accepted interaction.
// Downstream consumers (analytics, embedding retraining) read these; the
// engine's own state stays in process memory.
type InteractionMessage struct {
	EventID   uuid.UUID     `json:"event_id"`
	UserID    string        `json:"user_id"`
	ProductID string        `json:"product_id"`
	Rating    models.Rating `json:"rating"`
	Timestamp time.Time     `json:"timestamp"`
}

type InteractionPublisher struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

// NewInteractionPublisher returns nil when no brokers are configured.
func NewInteractionPublisher(cfg *config.KafkaConfig, logger *logrus.Logger) *InteractionPublisher {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &InteractionPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{}, // key by user id keeps a user's events ordered
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *InteractionPublisher) Publish(ctx context.Context, userID, productID string, rating models.Rating) error {
	msg := InteractionMessage{
		EventID:   uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal interaction message: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(userID),
		Value: payload,
	})
}

func (p *InteractionPublisher) Close() error {
	return p.writer.Close()
}
