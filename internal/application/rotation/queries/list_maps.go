package queries

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/domain/catalog"
)

// ListMapsQuery returns the map catalog with rotation membership
type ListMapsQuery struct{}

// MapStatus pairs a catalog map with its active flag
type MapStatus struct {
	Map    catalog.Map
	Active bool
}

// ListMapsResponse carries the catalog in schedule order
type ListMapsResponse struct {
	Maps []MapStatus
}

// ListMapsHandler handles the ListMaps query
type ListMapsHandler struct {
	service *planner.Service
}

// NewListMapsHandler creates a new ListMapsHandler
func NewListMapsHandler(service *planner.Service) *ListMapsHandler {
	return &ListMapsHandler{service: service}
}

// Handle executes the ListMaps query
func (h *ListMapsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListMapsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListMapsQuery")
	}

	rot := h.service.Plan().Rotation
	statuses := make([]MapStatus, 0, len(h.service.Maps()))
	for _, m := range h.service.Maps() {
		statuses = append(statuses, MapStatus{Map: m, Active: rot.Contains(m.ID)})
	}
	return &ListMapsResponse{Maps: statuses}, nil
}
