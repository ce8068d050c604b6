package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	os.Setenv("GEOCODE_API_BASE", srv.URL)
	t.Cleanup(func() { os.Unsetenv("GEOCODE_API_BASE") })

	return NewClient()
}

func TestReverseFormatsJapaneseAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("accept-language") != "ja" {
			t.Errorf("accept-language not forwarded: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"display_name": "東京都港区芝公園4丁目2-8",
			"address": {
				"postcode": "105-0011",
				"state": "東京都",
				"city": "港区",
				"suburb": "芝公園",
				"road": "4丁目",
				"house_number": "2-8"
			}
		}`))
	})

	got, err := c.Reverse(context.Background(), 35.6586, 139.7454)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "〒105-0011 東京都港区芝公園4丁目2-8"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReverseFallsBackToTownAndDisplayName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "somewhere", "address": {"town": "町"}}`))
	})

	got, err := c.Reverse(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "町" {
		t.Fatalf("town not used: %q", got)
	}

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "display only", "address": {}}`))
	})
	got, err = c.Reverse(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "display only" {
		t.Fatalf("display_name fallback not used: %q", got)
	}
}

func TestReverseErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Unable to geocode"}`))
	})
	if _, err := c.Reverse(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error when no address is returned")
	}

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	if _, err := c.Reverse(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on non-200")
	}
}

func TestReverseHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address": {"state": "東京都", "city": "港区"}}`))
	})

	r := gin.New()
	r.GET("/geocode/reverse", NewHandler(client).Reverse)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geocode/reverse?lat=35.6&lon=139.7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// missing coordinates
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/geocode/reverse?lat=35.6", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
