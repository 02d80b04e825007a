package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// AddSubstituteCommand appends a blank substitute to the roster
type AddSubstituteCommand struct{}

// AddSubstituteResponse carries the new substitute's id
type AddSubstituteResponse struct {
	PlayerID string
}

// AddSubstituteHandler handles the AddSubstitute command
type AddSubstituteHandler struct {
	service *planner.Service
}

// NewAddSubstituteHandler creates a new AddSubstituteHandler
func NewAddSubstituteHandler(service *planner.Service) *AddSubstituteHandler {
	return &AddSubstituteHandler{service: service}
}

// Handle executes the AddSubstitute command
func (h *AddSubstituteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*AddSubstituteCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddSubstituteCommand")
	}

	id, err := h.service.AddSubstitute(ctx)
	if err != nil {
		return nil, err
	}
	return &AddSubstituteResponse{PlayerID: id}, nil
}

// RemoveSubstituteCommand deletes a substitute by id. Starters cannot be
// removed through any command.
type RemoveSubstituteCommand struct {
	PlayerID string
}

// RemoveSubstituteResponse reports whether a substitute was removed
type RemoveSubstituteResponse struct {
	Found bool
}

// RemoveSubstituteHandler handles the RemoveSubstitute command
type RemoveSubstituteHandler struct {
	service *planner.Service
}

// NewRemoveSubstituteHandler creates a new RemoveSubstituteHandler
func NewRemoveSubstituteHandler(service *planner.Service) *RemoveSubstituteHandler {
	return &RemoveSubstituteHandler{service: service}
}

// Handle executes the RemoveSubstitute command
func (h *RemoveSubstituteHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RemoveSubstituteCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemoveSubstituteCommand")
	}
	if cmd.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}

	return &RemoveSubstituteResponse{Found: h.service.RemoveSubstitute(ctx, cmd.PlayerID)}, nil
}
