package source

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mmcdole/dex/internal/adapter"
	"github.com/mmcdole/dex/internal/adapter/source/pokeapi"
	"github.com/mmcdole/dex/internal/domain"
)

// NewClient creates the catalog source described by the server config
func NewClient(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Server.BaseURL == "" {
		return nil, fmt.Errorf("server base URL is required")
	}

	u, err := url.Parse(cfg.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server base URL: %q", cfg.Server.BaseURL)
	}

	return pokeapi.NewClient(
		cfg.Server.BaseURL,
		cfg.Catalog.ArtworkBaseURL,
		cfg.Server.Timeout,
		logger,
	), nil
}
