// Package hattrick fetches national player data from the XML sync source.
package hattrick

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "nt-data-lab/internal/errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks nt-data-lab/internal/hattrick Source

// maxDocumentSize caps the size of a source document.
const maxDocumentSize = 4 << 20

// PlayerList is the national players document.
type PlayerList struct {
	FetchedAt time.Time
	PlayerIDs []string
}

// PlayerDetail is a flattened player document.
type PlayerDetail struct {
	FetchedAt time.Time
	Record    map[string]interface{}
}

// Source is the external player data source.
type Source interface {
	NationalPlayers(ctx context.Context) (*PlayerList, error)
	PlayerDetail(ctx context.Context, playerID string) (*PlayerDetail, error)
}

// Client is a rate-limited HTTP client for the XML source.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Source = (*Client)(nil)

// NewClient creates a client. requestsPerSecond <= 0 disables the limiter.
func NewClient(baseURL string, timeout time.Duration, requestsPerSecond float64) *Client {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// NationalPlayers fetches the list of national players.
func (c *Client) NationalPlayers(ctx context.Context) (*PlayerList, error) {
	root, err := c.fetch(ctx, "nationalplayers.xml")
	if err != nil {
		return nil, err
	}

	fetched, err := parseFetchedDate(root)
	if err != nil {
		return nil, err
	}

	list := &PlayerList{FetchedAt: fetched, PlayerIDs: []string{}}
	players := root.child("Players")
	if players == nil {
		return nil, fmt.Errorf("%w: Players", apperrors.ErrMissingField)
	}
	for i := range players.Nodes {
		p := &players.Nodes[i]
		if p.XMLName.Local != "Player" {
			continue
		}
		id := p.text("PlayerID")
		if id == "" {
			log.Warn().Int("index", i).Msg("Skipping national player without PlayerID")
			continue
		}
		list.PlayerIDs = append(list.PlayerIDs, id)
	}
	return list, nil
}

// PlayerDetail fetches and flattens one player document.
func (c *Client) PlayerDetail(ctx context.Context, playerID string) (*PlayerDetail, error) {
	root, err := c.fetch(ctx, "player_"+url.PathEscape(playerID)+".xml")
	if err != nil {
		return nil, err
	}

	fetched, err := parseFetchedDate(root)
	if err != nil {
		return nil, err
	}

	player := root.child("Player")
	if player == nil {
		return nil, fmt.Errorf("%w: Player", apperrors.ErrMissingField)
	}
	record := flatten(player)
	if id, _ := record["PlayerID"].(string); id == "" {
		return nil, fmt.Errorf("%w: PlayerID", apperrors.ErrMissingField)
	}
	return &PlayerDetail{FetchedAt: fetched, Record: record}, nil
}

func (c *Client) fetch(ctx context.Context, name string) (*node, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", apperrors.ErrExternalFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", apperrors.ErrExternalFetch, err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrExternalFetch, name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrExternalFetch, name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", apperrors.ErrExternalFetch, name, resp.StatusCode)
	}

	return decodeDocument(body)
}
