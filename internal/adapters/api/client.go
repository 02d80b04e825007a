package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/premiertools/planner/internal/domain/catalog"
)

const (
	defaultBaseURL     = "https://valorant-api.com/v1"
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
)

// Names the reference API reports for non-competitive training areas.
// These lack splash/coordinate metadata too, but the names are filtered
// explicitly in case the metadata gap ever closes.
var excludedMapNames = map[string]bool{
	"The Range":      true,
	"Basic Training": true,
}

// ValorantClient fetches the agent and map catalogs from the public
// reference API. It implements ports.CatalogClient.
type ValorantClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	maxRetries  int
	backoffBase time.Duration
}

// NewValorantClient creates a catalog client with default settings
func NewValorantClient() *ValorantClient {
	return NewValorantClientWithConfig(defaultBaseURL, defaultTimeout, 5, 5, defaultMaxRetries, defaultBackoffBase)
}

// NewValorantClientWithConfig creates a catalog client with custom settings
func NewValorantClientWithConfig(
	baseURL string,
	timeout time.Duration,
	ratePerSec int,
	burst int,
	maxRetries int,
	backoffBase time.Duration,
) *ValorantClient {
	return &ValorantClient{
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
		baseURL:     baseURL,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
	}
}

// GetAgents retrieves the playable character catalog
func (c *ValorantClient) GetAgents(ctx context.Context) ([]catalog.Agent, error) {
	var response struct {
		Data []struct {
			UUID        string `json:"uuid"`
			DisplayName string `json:"displayName"`
			DisplayIcon string `json:"displayIcon"`
			Role        *struct {
				DisplayName string `json:"displayName"`
				DisplayIcon string `json:"displayIcon"`
			} `json:"role"`
		} `json:"data"`
	}

	if err := c.get(ctx, "/agents?isPlayableCharacter=true", &response); err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}

	agents := make([]catalog.Agent, 0, len(response.Data))
	for _, a := range response.Data {
		agent := catalog.Agent{
			ID:   a.UUID,
			Name: a.DisplayName,
			Icon: a.DisplayIcon,
		}
		if a.Role != nil {
			agent.Role = catalog.Role{Name: a.Role.DisplayName, Icon: a.Role.DisplayIcon}
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// GetMaps retrieves the competitive map catalog. Entries without splash
// or coordinate metadata are training areas and game-mode variants, not
// standard maps, and are dropped.
func (c *ValorantClient) GetMaps(ctx context.Context) ([]catalog.Map, error) {
	var response struct {
		Data []struct {
			UUID        string  `json:"uuid"`
			DisplayName string  `json:"displayName"`
			Splash      string  `json:"splash"`
			Coordinates *string `json:"coordinates"`
		} `json:"data"`
	}

	if err := c.get(ctx, "/maps", &response); err != nil {
		return nil, fmt.Errorf("failed to get maps: %w", err)
	}

	maps := make([]catalog.Map, 0, len(response.Data))
	for _, m := range response.Data {
		if excludedMapNames[m.DisplayName] {
			continue
		}
		if m.Splash == "" || m.Coordinates == nil || *m.Coordinates == "" {
			continue
		}
		maps = append(maps, catalog.Map{ID: m.UUID, Name: m.DisplayName, Splash: m.Splash})
	}
	return maps, nil
}

// get performs a GET with rate limiting and exponential backoff + jitter
// retries on transient failures.
func (c *ValorantClient) get(ctx context.Context, path string, result interface{}) error {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("network error: %w", err)
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}
			time.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("transient status %d from %s", resp.StatusCode, path)
			if attempt >= c.maxRetries {
				break
			}
			if ctx.Err() != nil {
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			}
			time.Sleep(addJitter(c.backoffBase * time.Duration(1<<attempt)))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
		}

		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// addJitter returns a duration between 50% and 150% of the original value
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64()
	return time.Duration(float64(d) * jitter)
}
