package events

import "maintenance-system/internal/entities"

const (
	RequestCreated      = "request.created"
	RequestUpdated      = "request.updated"
	RequestStageChanged = "request.stage_changed"
)

// RequestCreatedEvent is published after a new request is stored.
type RequestCreatedEvent struct {
	Request entities.Request
	ActorID uint64
}

func (e RequestCreatedEvent) Name() string { return RequestCreated }

type RequestUpdatedEvent struct {
	Request entities.Request
	ActorID uint64
}

func (e RequestUpdatedEvent) Name() string { return RequestUpdated }

// RequestStageChangedEvent carries the stage the request moved from.
type RequestStageChangedEvent struct {
	Request       entities.Request
	PreviousStage string
	ActorID       uint64
}

func (e RequestStageChangedEvent) Name() string { return RequestStageChanged }
