package ports

import (
	"context"

	"github.com/premiertools/planner/internal/domain/catalog"
)

// CatalogClient fetches the read-only reference catalogs the planner is
// keyed on. Implementations filter out non-playable characters and
// non-competitive map variants before returning.
type CatalogClient interface {
	GetAgents(ctx context.Context) ([]catalog.Agent, error)
	GetMaps(ctx context.Context) ([]catalog.Map, error)
}
