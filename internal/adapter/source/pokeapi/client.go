package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/dex/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second

	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultArtworkBaseURL is where official artwork images live
	DefaultArtworkBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"
)

// Client implements domain.CatalogSource for PokeAPI
type Client struct {
	baseURL        string
	artworkBaseURL string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient creates a new PokeAPI client. Zero values select the defaults.
func NewClient(baseURL, artworkBaseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if artworkBaseURL == "" {
		artworkBaseURL = DefaultArtworkBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		artworkBaseURL: artworkBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against the API and returns the body of a 2xx response.
// Failures are returned as *domain.FetchError; there are no retries.
func (c *Client) doRequest(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.FetchError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("pokeapi request", "op", op, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &domain.FetchError{Op: op, Err: ctx.Err()}
		}
		c.logger.Error("pokeapi request failed", "op", op, "error", err)
		return nil, &domain.FetchError{Op: op, Err: fmt.Errorf("%w: %v", domain.ErrServerOffline, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("pokeapi request error", "op", op, "status", resp.StatusCode, "url", reqURL)
		return nil, &domain.FetchError{Op: op, StatusCode: resp.StatusCode}
	}

	return body, nil
}

func decode(op string, body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return &domain.ParseError{Op: op, Err: err}
	}
	return nil
}

// ListEntries returns the first limit entries of the national catalog
func (c *Client) ListEntries(ctx context.Context, limit int) ([]domain.Entry, error) {
	const op = "list entries"

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", "0")

	body, err := c.doRequest(ctx, op, "/pokemon", query)
	if err != nil {
		return nil, err
	}

	var resp ListResponse
	if err := decode(op, body, &resp); err != nil {
		return nil, err
	}

	return MapEntries(resp.Results, c.artworkBaseURL), nil
}

// GetEntry returns the detail record for an ID or name
func (c *Client) GetEntry(ctx context.Context, idOrName string) (*domain.EntryDetail, error) {
	const op = "get entry"

	body, err := c.doRequest(ctx, op, "/pokemon/"+url.PathEscape(idOrName), nil)
	if err != nil {
		var fe *domain.FetchError
		if errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound {
			return nil, &domain.NotFoundError{ID: idOrName}
		}
		return nil, err
	}

	var resp PokemonResponse
	if err := decode(op, body, &resp); err != nil {
		return nil, err
	}

	return MapPokemon(&resp), nil
}

// ListCategories returns up to limit types
func (c *Client) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	const op = "list types"

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.doRequest(ctx, op, "/type", query)
	if err != nil {
		return nil, err
	}

	var resp ListResponse
	if err := decode(op, body, &resp); err != nil {
		return nil, err
	}

	return MapCategories(resp.Results), nil
}

// GetCategoryMembers returns the members of a type in API order
func (c *Client) GetCategoryMembers(ctx context.Context, name string) ([]domain.Entry, error) {
	const op = "get type"

	body, err := c.doRequest(ctx, op, "/type/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	var resp TypeResponse
	if err := decode(op, body, &resp); err != nil {
		return nil, err
	}

	return MapTypeMembers(resp.Pokemon, c.artworkBaseURL), nil
}
