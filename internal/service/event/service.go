package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/model"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/internal/repository"
	"github.com/Aditi22Bansal/VeridaX-project-sub001/pkg/messaging"
)

// Service writes engine events to the transactional outbox. The broker
// is optional: when present, a best-effort immediate publish is
// attempted; the outbox worker remains the delivery guarantee.
type Service struct {
	outboxRepo repository.OutboxRepository
	broker     messaging.Broker
}

func NewService(outboxRepo repository.OutboxRepository, broker messaging.Broker) *Service {
	return &Service{
		outboxRepo: outboxRepo,
		broker:     broker,
	}
}

func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	evt := &model.OutboxEvent{
		EventType: eventType,
		Payload:   payloadJSON,
	}

	if err := s.outboxRepo.Create(ctx, evt); err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}

	if s.broker != nil {
		go func() {
			if err := s.broker.Publish(context.Background(), eventType, evt.Payload); err != nil {
				log.Warn().Err(err).Str("event_type", eventType).Msg("immediate publish failed, worker will retry")
			}
		}()
	}

	return nil
}
