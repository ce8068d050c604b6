package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	os.Setenv("PLATFORM_API_BASE", srv.URL)
	os.Setenv("CHANNEL_ACCESS_TOKEN", "channel-token")
	t.Cleanup(func() {
		os.Unsetenv("PLATFORM_API_BASE")
		os.Unsetenv("CHANNEL_ACCESS_TOKEN")
	})

	return NewClient()
}

func TestProfile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/profile" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer user-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode(Profile{UserID: "U1", DisplayName: "テスト太郎"})
	})

	p, err := c.Profile(context.Background(), "user-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserID != "U1" || p.DisplayName != "テスト太郎" {
		t.Fatalf("wrong profile: %+v", p)
	}
}

func TestProfileRejectedToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := c.Profile(context.Background(), "expired"); err == nil {
		t.Fatal("expected error for rejected token")
	}
}

func TestProfileEmptyToken(t *testing.T) {
	c := NewClient()
	if _, err := c.Profile(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestPush(t *testing.T) {
	var got struct {
		To       string           `json:"to"`
		Messages []map[string]any `json:"messages"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/bot/message/push" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer channel-token" {
			t.Errorf("unexpected auth header %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	})

	err := c.Push(context.Background(), "U1", map[string]any{"type": "flex"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.To != "U1" || len(got.Messages) != 1 {
		t.Fatalf("wrong push payload: %+v", got)
	}
}

func TestPushFailureSurfacesStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid user"}`, http.StatusBadRequest)
	})

	if err := c.Push(context.Background(), "U1", map[string]any{}); err == nil {
		t.Fatal("expected error on non-200 push")
	}
}
