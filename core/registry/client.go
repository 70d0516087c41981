package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Release describes one published version of the package.
type Release struct {
	// Version is the published version string.
	Version string `json:"version"`
}

// Client defines the interface for registry operations.
type Client interface {
	// Versions fetches the full mapping of published version strings.
	Versions(ctx context.Context) (map[string]Release, error)
	// Download fetches the bytes behind an artifact URL.
	Download(ctx context.Context, url string) ([]byte, error)
}

// NewClient creates a registry client based on the configuration.
func NewClient(cfg Config) Client {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		pkg:      cfg.Package,
		http:     &http.Client{Transport: transport, Timeout: timeoutDuration},
	}
}

type httpClient struct {
	endpoint string
	pkg      string
	http     *http.Client
}

// packument is the slice of the npm registry document we care about.
type packument struct {
	Versions map[string]Release `json:"versions"`
}

func (c *httpClient) Versions(ctx context.Context) (map[string]Release, error) {
	url := c.endpoint + "/" + c.pkg
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	// Abbreviated metadata is an order of magnitude smaller than the full packument.
	req.Header.Set("Accept", "application/vnd.npm.install-v1+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s versions: %w", c.pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s versions: registry returned %s", c.pkg, resp.Status)
	}

	var doc packument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode registry response: %w", err)
	}

	return doc.Versions, nil
}

func (c *httpClient) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: server returned %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}
	return data, nil
}
