// Package pokeapi is a small JSON client for the public PokeAPI, used by
// the pokedex seed importer.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/course-apis/internal/config"
)

// HTTPAdapter fetches a URL and decodes its JSON body into out.
type HTTPAdapter interface {
	GetJSON(ctx context.Context, url string, out any) error
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 2 << 20

// Client is the default HTTPAdapter.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient builds a Client with its own tuned transport.
func NewClient(cfg config.PokeAPIConfig) *Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &Client{
		http: &http.Client{
			Transport: tr,
			Timeout:   cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// GetJSON implements HTTPAdapter.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{URL: url, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}

	return nil
}

// PokemonListURL is the listing endpoint limited to limit entries.
func (c *Client) PokemonListURL(limit int) string {
	return c.baseURL + "/pokemon?limit=" + strconv.Itoa(limit)
}
