// internal/relay/handler.go
package relay

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler exposes the relay over HTTP for the storefront. It keeps the
// provider credentials out of the browser; the frontend posts submission
// details here and this process talks to Gupshup.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type sendRequest struct {
	To             string `json:"to"`
	AntiqueDetails struct {
		Seller      string      `json:"seller"`
		Title       string      `json:"title"`
		Description string      `json:"description"`
		Address     string      `json:"address"`
		Contact     string      `json:"contact"`
		Price       interface{} `json:"price"`
	} `json:"antiqueDetails"`
}

// POST /api/send-whatsapp
func (h *Handler) SendWhatsApp(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	d := req.AntiqueDetails
	message := SubmissionMessage(d.Seller, d.Title, d.Description, d.Address, d.Contact, d.Price)

	body, err := h.client.Send(req.To, message)
	if err != nil {
		logrus.WithField("error", err.Error()).Error("whatsapp send failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	// Pass the provider response through untouched.
	if json.Valid(body) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": json.RawMessage(body)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": string(body)})
}

// Router builds the relay's standalone engine.
func Router(client *Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := NewHandler(client)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.POST("/api/send-whatsapp", h.SendWhatsApp)

	return r
}
