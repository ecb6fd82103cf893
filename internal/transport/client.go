package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"lookandfeel/internal/logger"
	"lookandfeel/pkg/lnftypes"
)

// Client fetches tables from a parent Server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	dialer     *websocket.Dialer
}

// NewClient creates a Client for the parent at baseURL, e.g. "http://127.0.0.1:7878".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		dialer:     websocket.DefaultDialer,
	}
}

// Fetch retrieves the parent's current table.
func (c *Client) Fetch(ctx context.Context) (*lnftypes.FullLookAndFeel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathTable, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch look and feel: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch look and feel: parent returned %s", resp.Status)
	}
	return Decode(resp.Body)
}

// Invalidate sends a theme-change signal to the parent.
func (c *Client) Invalidate(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathInvalidate, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to signal invalidation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to signal invalidation: parent returned %s", resp.Status)
	}
	return nil
}

// Subscribe connects to the parent's push channel and calls onTable with the initial table and
// every replacement until ctx is cancelled or the connection drops. A cancelled ctx returns nil.
func (c *Client) Subscribe(ctx context.Context, onTable func(*lnftypes.FullLookAndFeel) error) error {
	wsURL, err := c.websocketURL()
	if err != nil {
		return err
	}

	conn, _, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	for {
		var rec Record
		if err := conn.ReadJSON(&rec); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("subscription closed: %w", err)
		}

		table, err := FromRecord(rec)
		if err != nil {
			return err
		}
		logger.TableEvent("received", table.Generation(), table.Len())

		if err := onTable(table); err != nil {
			return err
		}
	}
}

// Attach subscribes and forwards every received table to receiver.
func (c *Client) Attach(ctx context.Context, receiver lnftypes.DataReceiver) error {
	return c.Subscribe(ctx, receiver.SetData)
}

func (c *Client) websocketURL() (string, error) {
	u, err := url.Parse(c.baseURL + PathSubscribe)
	if err != nil {
		return "", fmt.Errorf("invalid parent URL %q: %w", c.baseURL, err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid parent URL %q: unsupported scheme %q", c.baseURL, u.Scheme)
	}
	return u.String(), nil
}
