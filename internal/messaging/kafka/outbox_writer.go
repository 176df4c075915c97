package kafka

import (
	"context"
	"encoding/json"

	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enqueue marshals payload and stores it in the outbox inside tx. A nil repo
// disables publishing.
func Enqueue(
	ctx context.Context,
	repo OutboxRepository,
	tx *gorm.DB,
	topic, aggregateType, aggregateID, eventType string,
	payload any,
) error {
	if repo == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return repo.WithTx(tx).Create(ctx, OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	})
}
