package inmet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"climabrasil-server/internal/config"
	"climabrasil-server/internal/modules/clima/types"
)

// HourFetcher fetches the station readings of one (date, hour) pair.
type HourFetcher interface {
	FetchHour(ctx context.Context, date string, hour string) ([]types.StationRecord, error)
}

type Client struct {
	baseURL     string
	token       string
	maxEstacoes int
	httpClient  *http.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.INMETBaseURL, "/"),
		token:       cfg.INMETToken,
		maxEstacoes: cfg.MaxEstacoes,
		httpClient:  &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// FetchHour GETs the hourly station list for date ("2006-01-02") and an hour
// label like "1400". Responses longer than the configured cap are truncated.
// Callers decide how to degrade on error; this client never retries.
func (c *Client) FetchHour(ctx context.Context, date string, hour string) ([]types.StationRecord, error) {
	u := fmt.Sprintf("%s/token/estacao/dados/%s/%s/%s",
		c.baseURL, url.PathEscape(date), url.PathEscape(hour), url.PathEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s %s: %w", date, hour, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", date, hour, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s %s: unexpected status %d", date, hour, resp.StatusCode)
	}

	var estacoes []types.StationRecord
	if err := json.NewDecoder(resp.Body).Decode(&estacoes); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", date, hour, err)
	}

	if len(estacoes) > c.maxEstacoes {
		estacoes = estacoes[:c.maxEstacoes]
	}
	return estacoes, nil
}
