// Package countries fetches the country-name list from the REST Countries
// API once at startup.
//
// The provider is a result cell: it starts pending, and a single background
// fetch moves it to ready or failed. Consumers calling Names never block;
// while the cell is pending or failed they get an empty list, and records
// created in that window simply default their country.
package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
)

// DefaultURL is the REST Countries endpoint returning every country name.
const DefaultURL = "https://restcountries.com/v3.1/all?fields=name"

// State is the lifecycle of the one-shot fetch.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Provider holds the fetched country-name list.
type Provider struct {
	url    string
	client *http.Client

	mu    sync.RWMutex
	state State
	names []string
}

// New creates a provider for the given endpoint. An empty url uses
// DefaultURL; a nil client uses http.DefaultClient.
func New(url string, client *http.Client) *Provider {
	if url == "" {
		url = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{url: url, client: client}
}

// Fetch performs the one-shot request and populates the cell. It is meant
// to run in a background goroutine at startup; the returned error is for
// logging only, the cell itself records the failure.
func (p *Provider) Fetch(ctx context.Context) error {
	names, err := p.fetch(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.state = StateFailed
		slog.Warn("country list fetch failed", "url", p.url, "error", err)
		return err
	}

	p.state = StateReady
	p.names = names
	slog.Info("country list loaded", "count", len(names))
	return nil
}

func (p *Provider) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("country list request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country list fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country list fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("country list read: %w", err)
	}

	var payload []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("country list decode: %w", err)
	}

	names := make([]string, 0, len(payload))
	for _, entry := range payload {
		if entry.Name.Common != "" {
			names = append(names, entry.Name.Common)
		}
	}
	return names, nil
}

// Names returns the fetched list in API order, or an empty list while the
// fetch is pending or has failed.
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.state != StateReady {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// State returns the current fetch state.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}
