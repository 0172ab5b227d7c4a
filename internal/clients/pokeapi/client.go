// Package pokeapi is the location for the PokeAPI client
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokeroll/internal/clients/pokeapi Client

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/KirkDiggler/pokeroll/internal/entities/pokemon"
	"github.com/KirkDiggler/pokeroll/internal/errors"
)

const (
	// DefaultBaseURL is the PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds a single request
	DefaultHTTPTimeout = 10 * time.Second

	ResourcePokemon        = "pokemon"
	ResourcePokemonSpecies = "pokemon-species"
)

// Client defines the interface for PokeAPI interactions
type Client interface {
	// GetPokemon fetches /pokemon/{id}
	GetPokemon(ctx context.Context, id int) (*pokemon.Pokemon, error)

	// GetPokemonSpecies fetches /pokemon-species/{id}
	GetPokemonSpecies(ctx context.Context, id int) (*pokemon.Species, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Fieldf("HTTPTimeout", "must be positive, got %s", cfg.HTTPTimeout)
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		vb.Fieldf("BaseURL", "must be an http(s) URL, got %q", cfg.BaseURL)
	}

	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

// ResourceURL builds the URL of a single resource, e.g.
// ResourceURL(DefaultBaseURL, ResourcePokemon, 25) -> https://pokeapi.co/api/v2/pokemon/25
func ResourceURL(baseURL, resource string, id int) string {
	return fmt.Sprintf("%s/%s/%d", strings.TrimSuffix(baseURL, "/"), resource, id)
}

func (c *client) GetPokemon(ctx context.Context, id int) (*pokemon.Pokemon, error) {
	p, err := getJSON[pokemon.Pokemon](ctx, c, ResourcePokemon, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %d", id)
	}

	return p, nil
}

func (c *client) GetPokemonSpecies(ctx context.Context, id int) (*pokemon.Species, error) {
	s, err := getJSON[pokemon.Species](ctx, c, ResourcePokemonSpecies, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon species %d", id)
	}

	return s, nil
}

// response is the raw result of a successful fetch
type response struct {
	StatusCode int
	Body       []byte
}

// getJSON fetches one resource and decodes it. The body must be a JSON object;
// a top-level null is rejected like any other wrong shape.
func getJSON[T any](ctx context.Context, c *client, resource string, id int) (*T, error) {
	url := ResourceURL(c.baseURL, resource, id)

	resp, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var v *T
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s response", resource).
			WithMeta("url", url)
	}
	if v == nil {
		return nil, errors.Newf(errors.CodeDataLoss, "empty %s response", resource).
			WithMeta("url", url)
	}

	return v, nil
}

// fetch performs a blocking GET and fails on any non-2xx status
func (c *client) fetch(ctx context.Context, url string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request").
			WithMeta("url", url)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err).WithMeta("url", url)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully read or discarded
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err).WithMeta("url", url)
	}

	slog.DebugContext(ctx, "pokeapi response",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start))

	if code := errors.FromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		return nil, errors.Newf(code, "unexpected status %d", resp.StatusCode).
			WithMetaMap(map[string]interface{}{
				"url":    url,
				"status": resp.StatusCode,
			})
	}

	return &response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// transportError classifies failures that happen before a status is known
func transportError(err error) *errors.Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
	case stderrors.As(err, &netErr) && netErr.Timeout():
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
	default:
		return errors.WrapWithCode(err, errors.CodeUnavailable, "request failed")
	}
}
