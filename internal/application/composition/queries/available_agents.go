package queries

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/domain/catalog"
)

// AvailableAgentsQuery lists a player's pool in the order the picker
// presents it for one slot of one map.
type AvailableAgentsQuery struct {
	PlayerID string
	MapID    string
	Index    int
}

// AvailableAgentsResponse carries the ordered agents
type AvailableAgentsResponse struct {
	Agents []catalog.Agent
}

// AvailableAgentsHandler handles the AvailableAgents query
type AvailableAgentsHandler struct {
	service *planner.Service
}

// NewAvailableAgentsHandler creates a new AvailableAgentsHandler
func NewAvailableAgentsHandler(service *planner.Service) *AvailableAgentsHandler {
	return &AvailableAgentsHandler{service: service}
}

// Handle executes the AvailableAgents query
func (h *AvailableAgentsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q, ok := request.(*AvailableAgentsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AvailableAgentsQuery")
	}
	if q.PlayerID == "" {
		return nil, fmt.Errorf("player_id is required")
	}

	agents, err := h.service.AvailableAgents(q.PlayerID, q.MapID, q.Index)
	if err != nil {
		return nil, err
	}
	return &AvailableAgentsResponse{Agents: agents}, nil
}
