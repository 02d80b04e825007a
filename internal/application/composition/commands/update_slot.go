package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// UpdateSlotCommand overwrites one composition slot for a map. The
// composition is created lazily when the map has none recorded.
type UpdateSlotCommand struct {
	MapID    string
	Index    int
	PlayerID string
	AgentID  string
}

// UpdateSlotResponse is returned on success
type UpdateSlotResponse struct{}

// UpdateSlotHandler handles the UpdateSlot command
type UpdateSlotHandler struct {
	service *planner.Service
}

// NewUpdateSlotHandler creates a new UpdateSlotHandler
func NewUpdateSlotHandler(service *planner.Service) *UpdateSlotHandler {
	return &UpdateSlotHandler{service: service}
}

// Handle executes the UpdateSlot command
func (h *UpdateSlotHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*UpdateSlotCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateSlotCommand")
	}
	if cmd.MapID == "" {
		return nil, fmt.Errorf("map_id is required")
	}

	if err := h.service.UpdateSlot(ctx, cmd.MapID, cmd.Index, cmd.PlayerID, cmd.AgentID); err != nil {
		return nil, err
	}
	return &UpdateSlotResponse{}, nil
}
