package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// RenamePlayerCommand replaces a player's display name
type RenamePlayerCommand struct {
	PlayerID string
	Name     string
}

// RenamePlayerResponse reports whether the player existed
type RenamePlayerResponse struct {
	Found bool
}

// RenamePlayerHandler handles the RenamePlayer command
type RenamePlayerHandler struct {
	service *planner.Service
}

// NewRenamePlayerHandler creates a new RenamePlayerHandler
func NewRenamePlayerHandler(service *planner.Service) *RenamePlayerHandler {
	return &RenamePlayerHandler{service: service}
}

// Handle executes the RenamePlayer command
func (h *RenamePlayerHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RenamePlayerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RenamePlayerCommand")
	}
	if cmd.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}

	found := h.service.RenamePlayer(ctx, cmd.PlayerID, cmd.Name)
	return &RenamePlayerResponse{Found: found}, nil
}
