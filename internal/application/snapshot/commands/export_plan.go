package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// ExportPlanCommand serializes the full state bundle for download
type ExportPlanCommand struct{}

// ExportPlanResponse carries the bundle and its derived filename
type ExportPlanResponse struct {
	Data     []byte
	Filename string
}

// ExportPlanHandler handles the ExportPlan command
type ExportPlanHandler struct {
	service *planner.Service
}

// NewExportPlanHandler creates a new ExportPlanHandler
func NewExportPlanHandler(service *planner.Service) *ExportPlanHandler {
	return &ExportPlanHandler{service: service}
}

// Handle executes the ExportPlan command
func (h *ExportPlanHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ExportPlanCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExportPlanCommand")
	}

	data, filename, err := h.service.ExportSnapshot()
	if err != nil {
		return nil, err
	}
	return &ExportPlanResponse{Data: data, Filename: filename}, nil
}
