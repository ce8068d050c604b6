package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCartRouter(sess *Session) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(nil)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(ContextKey, sess) })
	r.POST("/cart", h.AddToCart)
	r.PATCH("/cart/:index", h.UpdateLine)
	r.DELETE("/cart/:index", h.RemoveLine)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seededSession(t *testing.T) *Session {
	t.Helper()
	sess := startSession(t)
	if _, err := sess.AddLine("幕の内弁当", "A", 2); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	return sess
}

func TestUpdateLineZeroDeltaIsNoop(t *testing.T) {
	sess := seededSession(t)
	r := newCartRouter(sess)

	w := doJSON(r, http.MethodPatch, "/cart/0", `{"delta": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("zero delta must be accepted, got %d: %s", w.Code, w.Body.String())
	}

	var view View
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(view.Cart) != 1 || view.Cart[0].Quantity != 2 {
		t.Fatalf("zero delta changed the cart: %+v", view.Cart)
	}
}

func TestUpdateLineAppliesDelta(t *testing.T) {
	sess := seededSession(t)
	r := newCartRouter(sess)

	if w := doJSON(r, http.MethodPatch, "/cart/0", `{"delta": -1}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := sess.State().Cart[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}

	// decrementing past 1 removes the line
	if w := doJSON(r, http.MethodPatch, "/cart/0", `{"delta": -1}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := len(sess.State().Cart); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestUpdateLineBadRequests(t *testing.T) {
	sess := seededSession(t)
	r := newCartRouter(sess)

	if w := doJSON(r, http.MethodPatch, "/cart/abc", `{"delta": 1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric index: expected 400, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/cart/0", `{"delta": "x"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", w.Code)
	}

	// out of range stays a silent no-op
	if w := doJSON(r, http.MethodPatch, "/cart/9", `{"delta": 1}`); w.Code != http.StatusOK {
		t.Fatalf("out-of-range index: expected 200, got %d", w.Code)
	}
	if got := sess.State().Cart[0].Quantity; got != 2 {
		t.Fatalf("out-of-range delta mutated the cart: %d", got)
	}
}
