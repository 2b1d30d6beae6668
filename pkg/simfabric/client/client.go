// Package client is a minimal HTTP client for the simfabric topology
// inspection API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}, nil
}

// Zones fetches the full zone tree as raw JSON.
func (c *Client) Zones() (json.RawMessage, error) {
	return c.getJSON("/api/v1/zones")
}

// Zone fetches one zone subtree by name.
func (c *Client) Zone(name string) (json.RawMessage, error) {
	return c.getJSON("/api/v1/zones/" + name)
}

// Hosts fetches all hosts, optionally filtered by zone.
func (c *Client) Hosts(zone string) (json.RawMessage, error) {
	path := "/api/v1/hosts"
	if zone != "" {
		path += "?zone=" + zone
	}
	return c.getJSON(path)
}

// Summary fetches the human-readable platform summary.
func (c *Client) Summary() (string, error) {
	return c.getText("/api/v1/summary")
}

// Fingerprint fetches the canonical platform fingerprint.
func (c *Client) Fingerprint() (string, error) {
	return c.getText("/api/v1/fingerprint")
}

func (c *Client) getJSON(path string) (json.RawMessage, error) {
	body, err := c.get(path)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) getText(path string) (string, error) {
	body, err := c.get(path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(path string) ([]byte, error) {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, body)
	}
	return body, nil
}
