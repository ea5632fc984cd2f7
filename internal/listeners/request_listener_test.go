package listeners

import (
	"context"
	"errors"
	"sync"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/events"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type broadcast struct {
	messageType string
	payload     RequestPayload
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
	err  error
}

func (f *fakeBroadcaster) Broadcast(messageType string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, broadcast{messageType, payload.(RequestPayload)})
	return nil
}

func TestRequestListener_RelaysEvents(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	out := &fakeBroadcaster{}
	NewRequestListener(out, zap.NewNop()).Register(bus)

	request := entities.Request{ID: 4, Subject: "Belt", Stage: constants.StageRepaired, TargetID: "CNC Machine 01"}
	bus.Publish(context.Background(), events.RequestStageChangedEvent{Request: request, PreviousStage: constants.StageInProgress, ActorID: 2})
	require.NoError(t, bus.Wait(context.Background()))

	require.Len(t, out.sent, 1)
	assert.Equal(t, events.RequestStageChanged, out.sent[0].messageType)
	assert.Equal(t, RequestPayload{
		ID:            4,
		Subject:       "Belt",
		Stage:         constants.StageRepaired,
		PreviousStage: constants.StageInProgress,
		TargetID:      "CNC Machine 01",
		ActorID:       2,
	}, out.sent[0].payload)

	bus.Publish(context.Background(), events.RequestCreatedEvent{Request: request})
	bus.Publish(context.Background(), events.RequestUpdatedEvent{Request: request, ActorID: 1})
	require.NoError(t, bus.Wait(context.Background()))

	types := make([]string, 0, len(out.sent))
	for _, b := range out.sent {
		types = append(types, b.messageType)
	}
	assert.ElementsMatch(t, []string{events.RequestStageChanged, events.RequestCreated, events.RequestUpdated}, types)
}

type unknownEvent struct{}

func (unknownEvent) Name() string { return events.RequestCreated }

func TestRequestListener_Errors(t *testing.T) {
	out := &fakeBroadcaster{err: errors.New("hub stopped")}
	l := NewRequestListener(out, zap.NewNop())

	err := l.handle(context.Background(), events.RequestCreatedEvent{})
	assert.ErrorContains(t, err, "broadcast request.created")

	err = l.handle(context.Background(), unknownEvent{})
	assert.ErrorContains(t, err, "unexpected event")
}
