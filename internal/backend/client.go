// Package backend is the client for the worker API that owns menu data and
// order persistence.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/menu"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/order"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    os.Getenv("BACKEND_URL"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope is the response wrapper shared by both endpoints. The backend
// reports application failures with error:true plus a user-facing message
// even on 200 responses.
type envelope struct {
	Menu          []menu.Item `json:"menu"`
	DeliveryAreas []string    `json:"deliveryAreas"`
	Error         bool        `json:"error"`
	Message       string      `json:"message"`
}

// FetchMenu retrieves the menu and the serviceable delivery areas. Any
// failure here is fatal for session start.
func (c *Client) FetchMenu(ctx context.Context) ([]menu.Item, delivery.AreaSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/menu", nil)
	if err != nil {
		return nil, nil, err
	}

	env, err := c.do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch menu: %w", err)
	}

	if err := menu.Validate(env.Menu); err != nil {
		return nil, nil, fmt.Errorf("fetch menu: malformed menu: %w", err)
	}

	return env.Menu, delivery.AreaSet(env.DeliveryAreas), nil
}

// SubmitOrder posts the composed order. The returned error carries the
// backend's message so the handler can surface it to the user and re-enable
// the submission.
func (c *Client) SubmitOrder(ctx context.Context, o *order.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/order",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("submit order: %w", err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed backend response: %w", err)
	}
	if env.Error {
		if env.Message == "" {
			env.Message = "unknown backend error"
		}
		return nil, fmt.Errorf("backend error: %s", env.Message)
	}
	return &env, nil
}
