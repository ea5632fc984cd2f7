package listeners

import (
	"context"
	"fmt"

	"maintenance-system/internal/events"
	"maintenance-system/pkg/eventbus"

	"go.uber.org/zap"
)

// Broadcaster pushes a typed message to every connected websocket client.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{}) error
}

type RequestPayload struct {
	ID            uint64 `json:"id"`
	Subject       string `json:"subject"`
	Stage         string `json:"stage"`
	PreviousStage string `json:"previousStage,omitempty"`
	TargetID      string `json:"targetId"`
	ActorID       uint64 `json:"actorId,omitempty"`
}

// RequestListener relays request events to websocket clients so open boards
// can refresh.
type RequestListener struct {
	broadcaster Broadcaster
	logger      *zap.Logger
}

func NewRequestListener(broadcaster Broadcaster, logger *zap.Logger) *RequestListener {
	return &RequestListener{broadcaster: broadcaster, logger: logger}
}

func (l *RequestListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RequestCreated, l.handle)
	bus.Subscribe(events.RequestUpdated, l.handle)
	bus.Subscribe(events.RequestStageChanged, l.handle)
	l.logger.Info("request listener subscribed",
		zap.Strings("events", []string{events.RequestCreated, events.RequestUpdated, events.RequestStageChanged}))
}

func (l *RequestListener) handle(_ context.Context, event eventbus.Event) error {
	var payload RequestPayload
	switch e := event.(type) {
	case events.RequestCreatedEvent:
		payload = RequestPayload{ID: e.Request.ID, Subject: e.Request.Subject, Stage: e.Request.Stage, TargetID: e.Request.TargetID, ActorID: e.ActorID}
	case events.RequestUpdatedEvent:
		payload = RequestPayload{ID: e.Request.ID, Subject: e.Request.Subject, Stage: e.Request.Stage, TargetID: e.Request.TargetID, ActorID: e.ActorID}
	case events.RequestStageChangedEvent:
		payload = RequestPayload{ID: e.Request.ID, Subject: e.Request.Subject, Stage: e.Request.Stage, PreviousStage: e.PreviousStage, TargetID: e.Request.TargetID, ActorID: e.ActorID}
		l.logger.Info("request moved",
			zap.Uint64("id", e.Request.ID),
			zap.String("from", e.PreviousStage),
			zap.String("to", e.Request.Stage))
	default:
		return fmt.Errorf("unexpected event %T", event)
	}

	if err := l.broadcaster.Broadcast(event.Name(), payload); err != nil {
		return fmt.Errorf("broadcast %s: %w", event.Name(), err)
	}
	return nil
}
