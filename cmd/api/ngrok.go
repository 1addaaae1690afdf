package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultNgrokAPI  = "http://ngrok:4040"
	ngrokAttempts    = 10
	ngrokRetryDelay  = 3 * time.Second
	ngrokHTTPTimeout = 5 * time.Second
)

var errNoTunnel = errors.New("ngrok has no active tunnels")

type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL asks the local ngrok API for a public URL, preferring HTTPS.
// ngrok may still be starting, so unreachable or empty answers are retried.
func detectNgrokURL(ctx context.Context, apiBase string, attempts int, delay time.Duration) (string, error) {
	client := &http.Client{Timeout: ngrokHTTPTimeout}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", fmt.Errorf("ngrok: gave up after %d attempts: %w", attempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnel
}
