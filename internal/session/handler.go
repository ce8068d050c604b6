package session

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/menu"
)

// ContextKey is where the session middleware parks the resolved session.
const ContextKey = "session"

// FromContext pulls the session attached by the middleware.
func FromContext(c *gin.Context) *Session {
	return c.MustGet(ContextKey).(*Session)
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Start opens a session. The client hands over its platform access token; a
// rejected token means the platform login flow has to run again.
func (h *Handler) Start(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		return
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
		return
	}

	sess, err := h.service.Start(c.Request.Context(), parts[1])
	if err != nil {
		if errors.Is(err, ErrProfile) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		// menu fetch failure is fatal for the session, same class as the
		// original full-screen startup error
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sess.State())
}

func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, FromContext(c).State())
}

type addLineRequest struct {
	Item     string `json:"item" binding:"required"`
	SKU      string `json:"sku" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item and sku are required"})
		return
	}

	sess := FromContext(c)
	if _, err := sess.AddLine(req.Item, req.SKU, req.Quantity); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, menu.ErrItemNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sess.State())
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateLine applies a quantity delta to a cart line. A zero delta and an
// out-of-range index are deliberately no-ops; the current state comes back
// either way.
func (h *Handler) UpdateLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}
	var req changeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := FromContext(c)
	sess.ChangeQuantity(index, req.Delta)
	c.JSON(http.StatusOK, sess.State())
}

func (h *Handler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	sess := FromContext(c)
	sess.RemoveLine(index)
	c.JSON(http.StatusOK, sess.State())
}

type openSelectionRequest struct {
	Item string `json:"item" binding:"required"`
}

func (h *Handler) OpenSelection(c *gin.Context) {
	var req openSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item is required"})
		return
	}

	sess := FromContext(c)
	if err := sess.OpenSelection(req.Item); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

type updateSelectionRequest struct {
	SKU  string `json:"sku"`
	Step int    `json:"step"`
}

// UpdateSelection switches the chosen option and/or steps the quantity of the
// open selection.
func (h *Handler) UpdateSelection(c *gin.Context) {
	var req updateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess := FromContext(c)
	if req.SKU != "" {
		if err := sess.ChooseOption(req.SKU); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrNoOpenSelection) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Step != 0 {
		sess.StepQuantity(req.Step)
	}
	c.JSON(http.StatusOK, sess.State())
}

func (h *Handler) ConfirmSelection(c *gin.Context) {
	sess := FromContext(c)

	line, err := sess.ConfirmSelection()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNoOpenSelection) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	state := sess.State()
	c.JSON(http.StatusOK, gin.H{"added": line, "session": state})
}

func (h *Handler) CancelSelection(c *gin.Context) {
	sess := FromContext(c)
	sess.CancelSelection()
	c.JSON(http.StatusOK, sess.State())
}
