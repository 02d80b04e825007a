package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// SetTeamNameCommand replaces the team name
type SetTeamNameCommand struct {
	Name string
}

// SetTeamNameResponse is returned on success
type SetTeamNameResponse struct{}

// SetTeamNameHandler handles the SetTeamName command
type SetTeamNameHandler struct {
	service *planner.Service
}

// NewSetTeamNameHandler creates a new SetTeamNameHandler
func NewSetTeamNameHandler(service *planner.Service) *SetTeamNameHandler {
	return &SetTeamNameHandler{service: service}
}

// Handle executes the SetTeamName command
func (h *SetTeamNameHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SetTeamNameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SetTeamNameCommand")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	h.service.SetTeamName(ctx, cmd.Name)
	return &SetTeamNameResponse{}, nil
}
