package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-leave/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// BalanceProvisioner creates the missing leave balance rows of new employees.
type BalanceProvisioner interface {
	Provision(ctx context.Context, userIDs []uuid.UUID, year int) (int, error)
}

// ConsumeEmployeeLifecycle provisions leave balances for every employee_created
// event until ctx is cancelled. Provisioning skips existing rows, so replayed
// events are harmless.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	balances BalanceProvisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if err := handleEmployeeCreated(ctx, msg, balances, log); err != nil {
			// Left uncommitted so the message is redelivered.
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleEmployeeCreated returns an error only for failures worth retrying.
func handleEmployeeCreated(
	ctx context.Context,
	msg kafkago.Message,
	balances BalanceProvisioner,
	log *zap.Logger,
) error {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee_created event failed", zap.Error(err))
		return nil
	}
	if event.EventType != "" && event.EventType != events.EventEmployeeCreated {
		return nil
	}

	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		log.Error("employee_created event has invalid employee_id", zap.String("employee_id", event.EmployeeID))
		return nil
	}

	year := event.OccurredAt.UTC().Year()
	if event.OccurredAt.IsZero() {
		year = time.Now().UTC().Year()
	}

	created, err := balances.Provision(ctx, []uuid.UUID{employeeID}, year)
	if err != nil {
		log.Error("provision leave balances failed",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return err
	}

	log.Info("leave balances provisioned from employee_created event",
		zap.String("employee_id", event.EmployeeID),
		zap.Int("year", year),
		zap.Int("created", created),
	)
	return nil
}
