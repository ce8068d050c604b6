// Package messaging talks to the embedding platform's API: profile lookup
// for the logged-in user and push delivery of the receipt message. Login
// itself happens inside the platform client; this service only ever sees the
// resulting access token.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}

type Client struct {
	apiBase      string
	channelToken string
	httpClient   *http.Client
}

func NewClient() *Client {
	base := os.Getenv("PLATFORM_API_BASE")
	if base == "" {
		base = "https://api.line.me"
	}
	return &Client{
		apiBase:      base,
		channelToken: os.Getenv("CHANNEL_ACCESS_TOKEN"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Profile resolves the user behind a platform access token. A rejected token
// means the platform login is missing or expired, so this doubles as the
// authentication check for session start.
func (c *Client) Profile(ctx context.Context, accessToken string) (Profile, error) {
	if accessToken == "" {
		return Profile{}, errors.New("missing platform access token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/v2/profile", nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Profile{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("platform profile error: %d %s", resp.StatusCode, string(raw))
	}

	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return Profile{}, err
	}
	if profile.UserID == "" {
		return Profile{}, errors.New("platform returned profile without userId")
	}
	return profile, nil
}

// Push sends a message payload to the user via the channel. The caller treats
// failures as best-effort: the order is already accepted by then.
func (c *Client) Push(ctx context.Context, userID string, message any) error {
	if c.channelToken == "" {
		return errors.New("missing CHANNEL_ACCESS_TOKEN")
	}

	body, err := json.Marshal(map[string]any{
		"to":       userID,
		"messages": []any{message},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiBase+"/v2/bot/message/push",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("platform push error: %d %s", resp.StatusCode, string(raw))
	}
	return nil
}
