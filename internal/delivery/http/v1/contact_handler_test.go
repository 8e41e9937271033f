package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"electric-system-backend/internal/delivery/http/middleware"
	v1 "electric-system-backend/internal/delivery/http/v1"
	"electric-system-backend/internal/usecase"
	"electric-system-backend/pkg/email"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records outbound emails; failOn selects a recipient whose send
// should error.
type fakeSender struct {
	sent   []email.Message
	failOn func(msg email.Message) bool
}

func (f *fakeSender) Send(_ context.Context, msg email.Message) error {
	if f.failOn != nil && f.failOn(msg) {
		return errors.New("provider rejected message")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestRouter(sender email.Sender, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := email.NewEmailServiceWithSender(sender, "")
	return v1.NewRouter(v1.RouterDeps{
		ContactUC:        usecase.NewContactUsecase(svc),
		Limiter:          middleware.NewMemoryLimiter(limit, time.Minute),
		ContactRateLimit: middleware.ContactRateLimitConfig(limit, time.Minute),
	})
}

func postContact(r *gin.Engine, body string, clientIP string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Jean Dupont",
	"email": "jean@example.com",
	"phone": "+352123456",
	"service": "domotique",
	"message": "Bonjour, je souhaite un devis."
}`

func TestSubmitContact(t *testing.T) {
	t.Run("Should accept a valid submission and dispatch both emails", func(t *testing.T) {
		sender := &fakeSender{}
		r := newTestRouter(sender, 5)

		w := postContact(r, validBody, "203.0.113.7")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())

		require.Len(t, sender.sent, 2)
		assert.Equal(t, "info@electric-system.lu", sender.sent[0].To)
		assert.Contains(t, sender.sent[0].Subject, "Domotique")
		assert.Equal(t, "jean@example.com", sender.sent[1].To)
		assert.Contains(t, sender.sent[1].HTMLBody, "Bonjour Jean Dupont,")
	})

	t.Run("Should deliver twice for a duplicate submission", func(t *testing.T) {
		// No deduplication: same payload, two deliveries of each email.
		sender := &fakeSender{}
		r := newTestRouter(sender, 5)

		postContact(r, validBody, "203.0.113.7")
		postContact(r, validBody, "203.0.113.7")

		assert.Len(t, sender.sent, 4)
	})

	t.Run("Should reject the 6th request in a window with 429", func(t *testing.T) {
		sender := &fakeSender{}
		r := newTestRouter(sender, 5)

		for i := 0; i < 5; i++ {
			w := postContact(r, validBody, "203.0.113.7")
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := postContact(r, validBody, "203.0.113.7")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Trop de demandes. Veuillez réessayer dans une minute."}`, w.Body.String())
		// The throttled request sent nothing.
		assert.Len(t, sender.sent, 10)
	})

	t.Run("Should return field details on validation failure and send nothing", func(t *testing.T) {
		sender := &fakeSender{}
		r := newTestRouter(sender, 5)

		body := `{
			"name": "Jean Dupont",
			"email": "jean@example.com",
			"phone": "+352123456",
			"service": "unknown-category",
			"message": "court"
		}`
		w := postContact(r, body, "203.0.113.7")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)

		var resp struct {
			Error   string `json:"error"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Error)

		fields := make([]string, 0, len(resp.Details))
		for _, d := range resp.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "service")
		assert.Contains(t, fields, "message")
	})

	t.Run("Should reject malformed JSON with 400", func(t *testing.T) {
		sender := &fakeSender{}
		r := newTestRouter(sender, 5)

		w := postContact(r, `{"name": `, "203.0.113.7")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sender.sent)
	})

	t.Run("Should return 500 without sending when the provider is unconfigured", func(t *testing.T) {
		r := newTestRouter(nil, 5)

		// Input validity is irrelevant: the preflight runs before parsing.
		for _, body := range []string{validBody, `{"garbage": true}`} {
			w := postContact(r, body, "203.0.113.7")
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"Email service not configured"}`, w.Body.String())
		}
	})

	t.Run("Should return 500 when the notification send fails", func(t *testing.T) {
		sender := &fakeSender{failOn: func(msg email.Message) bool {
			return msg.To == "info@electric-system.lu"
		}}
		r := newTestRouter(sender, 5)

		w := postContact(r, validBody, "203.0.113.7")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to send email"}`, w.Body.String())
		assert.Empty(t, sender.sent, "confirmation must not be attempted")
	})

	t.Run("Should collapse a confirmation failure to the opaque 500", func(t *testing.T) {
		sender := &fakeSender{failOn: func(msg email.Message) bool {
			return msg.To == "jean@example.com"
		}}
		r := newTestRouter(sender, 5)

		w := postContact(r, validBody, "203.0.113.7")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
		// The business notification was already delivered.
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "info@electric-system.lu", sender.sent[0].To)
	})
}

func TestGetContent(t *testing.T) {
	r := newTestRouter(&fakeSender{}, 5)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/content", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	for _, section := range []string{"meta", "company", "hero", "services", "about", "testimonials", "contact", "footer"} {
		assert.Contains(t, doc, section)
	}
	assert.Contains(t, w.Body.String(), "ELECTRIC SYSTEM Sàrl")
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeSender{}, 5)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
