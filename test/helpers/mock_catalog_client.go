package helpers

import (
	"context"
	"sync"

	"github.com/premiertools/planner/internal/domain/catalog"
)

// MockCatalogClient is a test double for the CatalogClient port
type MockCatalogClient struct {
	mu sync.Mutex

	Agents []catalog.Agent
	Maps   []catalog.Map

	// Error injection
	AgentsErr error
	MapsErr   error

	// Call tracking
	AgentCalls int
	MapCalls   int
}

// NewMockCatalogClient creates a mock preloaded with the fixture catalogs
func NewMockCatalogClient() *MockCatalogClient {
	return &MockCatalogClient{
		Agents: FixtureAgents(),
		Maps:   FixtureMaps(),
	}
}

// GetAgents returns the configured agents or the injected error
func (m *MockCatalogClient) GetAgents(ctx context.Context) ([]catalog.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AgentCalls++
	if m.AgentsErr != nil {
		return nil, m.AgentsErr
	}
	return m.Agents, nil
}

// GetMaps returns the configured maps or the injected error
func (m *MockCatalogClient) GetMaps(ctx context.Context) ([]catalog.Map, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MapCalls++
	if m.MapsErr != nil {
		return nil, m.MapsErr
	}
	return m.Maps, nil
}
