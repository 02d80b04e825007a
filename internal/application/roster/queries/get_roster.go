package queries

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/domain/roster"
)

// GetRosterQuery returns the full roster
type GetRosterQuery struct{}

// GetRosterResponse carries starters and substitutes
type GetRosterResponse struct {
	TeamName    string
	Starters    []roster.Player
	Substitutes []roster.Player
}

// GetRosterHandler handles the GetRoster query
type GetRosterHandler struct {
	service *planner.Service
}

// NewGetRosterHandler creates a new GetRosterHandler
func NewGetRosterHandler(service *planner.Service) *GetRosterHandler {
	return &GetRosterHandler{service: service}
}

// Handle executes the GetRoster query
func (h *GetRosterHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetRosterQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetRosterQuery")
	}

	p := h.service.Plan()
	return &GetRosterResponse{
		TeamName:    p.TeamName,
		Starters:    p.Roster.Starters[:],
		Substitutes: p.Roster.Substitutes,
	}, nil
}
