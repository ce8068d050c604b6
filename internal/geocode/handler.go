package geocode

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Reverse prefills the delivery address from device coordinates.
func (h *Handler) Reverse(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required and must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon is required and must be a number"})
		return
	}

	address, err := h.client.Reverse(c.Request.Context(), lat, lon)
	if err != nil {
		// best-effort: the client falls back to manual entry
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not resolve the address, please enter it manually"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}
