package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// ImportPlanCommand applies an uploaded bundle. Fields absent from the
// bundle leave the corresponding state untouched; malformed input fails
// with no mutation at all.
type ImportPlanCommand struct {
	Data []byte
}

// ImportPlanResponse is returned on success
type ImportPlanResponse struct{}

// ImportPlanHandler handles the ImportPlan command
type ImportPlanHandler struct {
	service *planner.Service
}

// NewImportPlanHandler creates a new ImportPlanHandler
func NewImportPlanHandler(service *planner.Service) *ImportPlanHandler {
	return &ImportPlanHandler{service: service}
}

// Handle executes the ImportPlan command
func (h *ImportPlanHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ImportPlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ImportPlanCommand")
	}
	if len(cmd.Data) == 0 {
		return nil, fmt.Errorf("import data is required")
	}

	if err := h.service.ImportSnapshot(ctx, cmd.Data); err != nil {
		return nil, err
	}
	return &ImportPlanResponse{}, nil
}
