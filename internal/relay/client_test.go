// internal/relay/client_test.go
package relay

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vintagecottage/storefront/internal/config"
)

func stubProvider(t *testing.T, status int, capture *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if capture != nil {
			fields := map[string]string{"apikey": r.Header.Get("apikey")}
			for key := range r.PostForm {
				fields[key] = r.PostForm.Get(key)
			}
			*capture = fields
		}
		w.WriteHeader(status)
		w.Write([]byte(`{"status":"submitted"}`))
	}))
}

func TestClientSendFormEncoding(t *testing.T) {
	var captured map[string]string
	server := stubProvider(t, http.StatusOK, &captured)
	defer server.Close()

	client := NewClient(config.WhatsAppConfig{
		APIURL:       server.URL,
		APIKey:       "test-key",
		SenderNumber: "15557946085",
	})

	body, err := client.Send("917709400619", "hello from the shop")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"submitted"}`, string(body))

	assert.Equal(t, "test-key", captured["apikey"])
	assert.Equal(t, "whatsapp", captured["channel"])
	assert.Equal(t, "15557946085", captured["source"])
	assert.Equal(t, "917709400619", captured["destination"])
	assert.Equal(t, "hello from the shop", captured["message"])
	assert.Equal(t, "text", captured["type"])
}

func TestClientDefaultDestination(t *testing.T) {
	var captured map[string]string
	server := stubProvider(t, http.StatusOK, &captured)
	defer server.Close()

	client := NewClient(config.WhatsAppConfig{
		APIURL:             server.URL,
		SenderNumber:       "1",
		DefaultDestination: "917700000000",
	})

	_, err := client.Send("", "msg")
	assert.NoError(t, err)
	assert.Equal(t, "917700000000", captured["destination"])
}

func TestClientNoDestination(t *testing.T) {
	client := NewClient(config.WhatsAppConfig{APIURL: "http://unused"})
	_, err := client.Send("", "msg")
	assert.Error(t, err)
}

func TestClientProviderError(t *testing.T) {
	server := stubProvider(t, http.StatusUnauthorized, nil)
	defer server.Close()

	client := NewClient(config.WhatsAppConfig{APIURL: server.URL, SenderNumber: "1"})
	_, err := client.Send("2", "msg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSubmissionMessage(t *testing.T) {
	msg := SubmissionMessage("Asha", "Clock", "brass dial", "Pune", "+919812345678", 25000)
	assert.Equal(t,
		"New Antique Submission:\nName: Asha\nTitle: Clock\nDescription: brass dial\nAddress: Pune\nContact: +919812345678\nPrice: ₹25000",
		msg)
}

func TestHandlerSendWhatsApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var captured map[string]string
	server := stubProvider(t, http.StatusOK, &captured)
	defer server.Close()

	client := NewClient(config.WhatsAppConfig{APIURL: server.URL, SenderNumber: "1"})
	router := Router(client)

	body, _ := json.Marshal(map[string]interface{}{
		"to": "917709400619",
		"antiqueDetails": map[string]interface{}{
			"seller":      "Ravi",
			"title":       "Urn",
			"description": "copper",
			"address":     "Nashik",
			"contact":     "+919876543210",
			"price":       4000,
		},
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/send-whatsapp", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	assert.Equal(t, "submitted", response["data"].(map[string]interface{})["status"])
	assert.Contains(t, captured["message"], "New Antique Submission:")
	assert.Contains(t, captured["message"], "Name: Ravi")
}

func TestHandlerProviderFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := stubProvider(t, http.StatusInternalServerError, nil)
	defer server.Close()

	client := NewClient(config.WhatsAppConfig{APIURL: server.URL, SenderNumber: "1"})
	router := Router(client)

	body, _ := json.Marshal(map[string]interface{}{"to": "2"})
	req, _ := http.NewRequest(http.MethodPost, "/api/send-whatsapp", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"].(bool))
}
