// Package geocode resolves device coordinates into a delivery address via a
// Nominatim-style reverse geocoding API. Failures here are best-effort: the
// user falls back to typing the address.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	base := os.Getenv("GEOCODE_API_BASE")
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     *struct {
		Postcode    string `json:"postcode"`
		State       string `json:"state"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Suburb      string `json:"suburb"`
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
	} `json:"address"`
}

// Reverse converts latitude/longitude into a Japanese-style address string:
// 〒<postcode> followed by prefecture, city (or town), suburb, road and house
// number concatenated without separators. When the structured components are
// empty the provider's display name is used instead.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("addressdetails", "1")
	q.Set("accept-language", "ja")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	// Nominatim's usage policy requires an identifying agent
	req.Header.Set("User-Agent", "rakuraku-bento-pages/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding error: %d", resp.StatusCode)
	}

	var result reverseResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if result.Address == nil {
		return "", errors.New("no address found for coordinates")
	}

	addr := result.Address
	city := addr.City
	if city == "" {
		city = addr.Town
	}

	var b strings.Builder
	if addr.Postcode != "" {
		b.WriteString("〒" + addr.Postcode + " ")
	}
	for _, part := range []string{addr.State, city, addr.Suburb, addr.Road, addr.HouseNumber} {
		b.WriteString(part)
	}

	formatted := strings.TrimSpace(b.String())
	if formatted == "" {
		formatted = result.DisplayName
	}
	if formatted == "" {
		return "", errors.New("no address found for coordinates")
	}
	return formatted, nil
}
