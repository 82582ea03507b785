package api

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"expensetracker/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func notificationTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/notifications", NewNotificationHandler(cfg).Send)
	return router
}

func TestNotificationHandler_Send_InvalidPayload(t *testing.T) {
	router := notificationTestRouter(&config.Config{})

	cases := []string{
		`{}`,
		`{"email":"not-an-email","subject":"s","message":"m"}`,
		`{"email":"user@example.com","message":"m"}`,
		`{"email":"user@example.com","subject":"s"}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest("POST", "/notifications", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, "body: %s", body)
	}
}

func TestNotificationHandler_Send_ProviderError(t *testing.T) {
	// email disabled: the provider refuses, the handler reports the
	// provider message with a client error
	router := notificationTestRouter(&config.Config{
		Email: config.EmailConfig{Enabled: false},
	})

	body := `{"email":"user@example.com","subject":"Weekly summary","message":"hello"}`
	req := httptest.NewRequest("POST", "/notifications", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "disabled")
}
