package order

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type checkoutRequest struct {
	Method  string `json:"method" binding:"required"`
	Address string `json:"address"`
	Time    string `json:"time"`
}

// Checkout submits the session's cart as an order.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "method is required"})
		return
	}

	choice := delivery.Choice{
		Method:  delivery.Method(req.Method),
		Address: strings.TrimSpace(req.Address),
		Time:    req.Time,
	}

	sess := session.FromContext(c)
	result, err := h.service.Checkout(c.Request.Context(), sess, choice)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmitInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// backend rejection or transport failure: recoverable, the
			// guard is already released for a retry
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	resp := gin.H{
		"order":       result.Order,
		"receiptSent": result.ReceiptSent,
	}
	if !result.ReceiptSent {
		resp["warning"] = "ご注文は受け付けましたが、確認メッセージの送信に失敗しました。"
	}
	c.JSON(http.StatusCreated, resp)
}
