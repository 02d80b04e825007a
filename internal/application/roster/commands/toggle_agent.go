package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// ToggleAgentCommand flips an agent in a player's pool. Removing an agent
// cascade-clears every composition slot using that (player, agent) pair.
type ToggleAgentCommand struct {
	PlayerID string
	AgentID  string
}

// ToggleAgentResponse reports the toggle direction and cascade size
type ToggleAgentResponse struct {
	Removed      bool
	ClearedSlots int
}

// ToggleAgentHandler handles the ToggleAgent command
type ToggleAgentHandler struct {
	service *planner.Service
}

// NewToggleAgentHandler creates a new ToggleAgentHandler
func NewToggleAgentHandler(service *planner.Service) *ToggleAgentHandler {
	return &ToggleAgentHandler{service: service}
}

// Handle executes the ToggleAgent command
func (h *ToggleAgentHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ToggleAgentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ToggleAgentCommand")
	}
	if cmd.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}
	if cmd.AgentID == "" {
		return nil, fmt.Errorf("agent_id is required")
	}

	removed, cleared, found := h.service.TogglePool(ctx, cmd.PlayerID, cmd.AgentID)
	if !found {
		return nil, fmt.Errorf("unknown player: %s", cmd.PlayerID)
	}
	return &ToggleAgentResponse{Removed: removed, ClearedSlots: cleared}, nil
}
