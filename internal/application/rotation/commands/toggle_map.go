package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// ToggleMapCommand flips a map in or out of the active rotation
type ToggleMapCommand struct {
	MapID string
}

// ToggleMapResponse reports the map's new state
type ToggleMapResponse struct {
	Active bool
}

// ToggleMapHandler handles the ToggleMap command
type ToggleMapHandler struct {
	service *planner.Service
}

// NewToggleMapHandler creates a new ToggleMapHandler
func NewToggleMapHandler(service *planner.Service) *ToggleMapHandler {
	return &ToggleMapHandler{service: service}
}

// Handle executes the ToggleMap command
func (h *ToggleMapHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ToggleMapCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ToggleMapCommand")
	}
	if cmd.MapID == "" {
		return nil, fmt.Errorf("map_id is required")
	}

	return &ToggleMapResponse{Active: h.service.ToggleMap(ctx, cmd.MapID)}, nil
}
