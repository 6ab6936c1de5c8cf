// internal/relay/client.go
package relay

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vintagecottage/storefront/internal/config"
)

// Client sends WhatsApp text messages through the Gupshup messaging API.
// The endpoint takes form-encoded fields and authenticates with an apikey
// header.
type Client struct {
	httpClient *http.Client
	config     config.WhatsAppConfig
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		config:     cfg,
	}
}

// Send delivers a text message to the destination number (country code, no
// plus sign). An empty destination falls back to the configured default.
// On success the provider's response body is returned so callers can pass
// it through.
func (c *Client) Send(destination, message string) ([]byte, error) {
	if destination == "" {
		destination = c.config.DefaultDestination
	}
	if destination == "" {
		return nil, fmt.Errorf("no destination number configured")
	}

	form := url.Values{}
	form.Set("channel", "whatsapp")
	form.Set("source", c.config.SenderNumber)
	form.Set("destination", destination)
	form.Set("message", message)
	form.Set("type", "text")

	req, err := http.NewRequest(http.MethodPost, c.config.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach WhatsApp API: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("WhatsApp API returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// SubmissionMessage formats the seller notification text. The field order
// matches what the shop owner expects to read on their phone.
func SubmissionMessage(seller, title, description, address, contact string, price interface{}) string {
	return fmt.Sprintf(
		"New Antique Submission:\nName: %s\nTitle: %s\nDescription: %s\nAddress: %s\nContact: %s\nPrice: ₹%v",
		seller, title, description, address, contact, price,
	)
}
