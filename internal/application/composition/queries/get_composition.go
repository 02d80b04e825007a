package queries

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/domain/composition"
)

// GetCompositionQuery returns a map's slots with stacking diagnostics
type GetCompositionQuery struct {
	MapID string
}

// GetCompositionResponse carries the slots plus derived diagnostics.
// Duplicates and role counts are recomputed on every read, never cached.
type GetCompositionResponse struct {
	Slots      [composition.SlotCount]composition.Slot
	Duplicates map[string]bool
	RoleCounts map[string]int
}

// GetCompositionHandler handles the GetComposition query
type GetCompositionHandler struct {
	service *planner.Service
}

// NewGetCompositionHandler creates a new GetCompositionHandler
func NewGetCompositionHandler(service *planner.Service) *GetCompositionHandler {
	return &GetCompositionHandler{service: service}
}

// Handle executes the GetComposition query
func (h *GetCompositionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	q, ok := request.(*GetCompositionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCompositionQuery")
	}
	if q.MapID == "" {
		return nil, fmt.Errorf("map_id is required")
	}

	return &GetCompositionResponse{
		Slots:      h.service.Plan().Board.Slots(q.MapID),
		Duplicates: h.service.DuplicateAgents(q.MapID),
		RoleCounts: h.service.RoleCounts(q.MapID),
	}, nil
}
