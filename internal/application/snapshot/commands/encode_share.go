package commands

import (
	"context"
	"fmt"

	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
)

// EncodeShareCommand renders the current state as a shareable fragment
type EncodeShareCommand struct{}

// EncodeShareResponse carries the encoded fragment
type EncodeShareResponse struct {
	Fragment string
}

// EncodeShareHandler handles the EncodeShare command
type EncodeShareHandler struct {
	service *planner.Service
}

// NewEncodeShareHandler creates a new EncodeShareHandler
func NewEncodeShareHandler(service *planner.Service) *EncodeShareHandler {
	return &EncodeShareHandler{service: service}
}

// Handle executes the EncodeShare command
func (h *EncodeShareHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*EncodeShareCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *EncodeShareCommand")
	}

	fragment, err := h.service.EncodeShare()
	if err != nil {
		return nil, err
	}
	return &EncodeShareResponse{Fragment: fragment}, nil
}
