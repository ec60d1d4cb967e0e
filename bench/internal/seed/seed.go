package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type createUserResponse struct {
	APIKey string `json:"api_key"`
}

type createURLRequest struct {
	TargetURL string `json:"target_url"`
	APIKey    string `json:"api_key"`
}

type urlInfo struct {
	URL string `json:"url"`
}

// Client talks to a running shortlink server.
type Client struct {
	baseURL string
	workers int
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration, workers int) *Client {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		workers: workers,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        workers * 2,
				MaxIdleConnsPerHost: workers * 2,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Register creates a user and returns its API key.
func (c *Client) Register(username, email string) (string, error) {
	var resp createUserResponse
	if err := c.postJSON(c.baseURL+"/users", createUserRequest{Username: username, Email: email}, &resp); err != nil {
		return "", err
	}
	if resp.APIKey == "" {
		return "", fmt.Errorf("empty api key in response")
	}
	return resp.APIKey, nil
}

// Seed creates count short URLs with distinct targets and returns their
// public keys. The server pool must hold at least count keys.
func (c *Client) Seed(apiKey string, count int) ([]string, error) {
	fmt.Printf("Seeding %d URLs (workers: %d)...\n", count, c.workers)

	keys := make([]string, count)
	var progress atomic.Int64

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.workers)

	for i := range count {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			key, err := c.createURL(apiKey, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to create url %d: %w", i, err)
			}
			keys[i] = key
			if done := progress.Add(1); done%1000 == 0 || int(done) == count {
				fmt.Printf("\rProgress: %d/%d", done, count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d keys\n", len(keys))
	return keys, nil
}

func (c *Client) createURL(apiKey, target string) (string, error) {
	var info urlInfo
	if err := c.postJSON(c.baseURL+"/url", createURLRequest{TargetURL: target, APIKey: apiKey}, &info); err != nil {
		return "", err
	}
	idx := strings.LastIndexByte(info.URL, '/')
	if idx < 0 || idx == len(info.URL)-1 {
		return "", fmt.Errorf("unexpected short url %q", info.URL)
	}
	return info.URL[idx+1:], nil
}

func (c *Client) postJSON(url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
