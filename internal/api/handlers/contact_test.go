package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/webfolio/portfolio-backend/internal/api/middleware"
	"github.com/webfolio/portfolio-backend/internal/model"
	"github.com/webfolio/portfolio-backend/internal/repository"
	"github.com/webfolio/portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock ContactRepository
type mockContactRepository struct {
	createFunc func(ctx context.Context, msg *model.ContactMessage) (string, error)
	calls      int
	lastMsg    *model.ContactMessage
}

func (m *mockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (string, error) {
	m.calls++
	m.lastMsg = msg
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	return "generated-id", nil
}

// Mock Notifier
type mockNotifier struct {
	sendFunc func(msg *model.ContactMessage) bool
	calls    int
	lastMsg  *model.ContactMessage
}

func (m *mockNotifier) SendContactMessage(msg *model.ContactMessage) bool {
	m.calls++
	m.lastMsg = msg
	if m.sendFunc != nil {
		return m.sendFunc(msg)
	}
	return true
}

func newContactRouter(repo repository.ContactRepository, notifier service.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	validationMiddleware := middleware.NewValidationMiddleware()
	handler := NewContactHandler(repo, notifier)
	router.POST("/api/contact", validationMiddleware.ValidateContactRequest(), handler.Submit)
	return router
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitResponseIndependentOfNotifierOutcome(t *testing.T) {
	body := `{"name":"Ana","phone":"555-1","message":"Hi"}`

	var bodies []string
	for _, delivered := range []bool{true, false} {
		repo := &mockContactRepository{}
		notifier := &mockNotifier{sendFunc: func(*model.ContactMessage) bool { return delivered }}
		router := newContactRouter(repo, notifier)

		rec := postContact(router, body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, repo.calls)
		assert.Equal(t, 1, notifier.calls)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1], "notifier outcome must not change the response")

	var resp struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "generated-id", resp.ID)
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"555-1","message":"Hi"}`},
		{"missing phone", `{"name":"Ana","message":"Hi"}`},
		{"missing message", `{"name":"Ana","phone":"555-1"}`},
		{"empty object", `{}`},
		{"malformed json", `{"name":"Ana",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockContactRepository{}
			notifier := &mockNotifier{}
			router := newContactRouter(repo, notifier)

			rec := postContact(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, repo.calls, "persistence must not be invoked on validation failure")
			assert.Zero(t, notifier.calls, "notification must not be invoked on validation failure")
		})
	}
}

func TestSubmitWithoutEmail(t *testing.T) {
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	router := newContactRouter(repo, notifier)

	rec := postContact(router, `{"name":"Ana","phone":"555-1","message":"Hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.lastMsg)
	assert.Empty(t, repo.lastMsg.Email)
	require.NotNil(t, notifier.lastMsg)
	assert.Empty(t, notifier.lastMsg.Email)
}

func TestSubmitPersistsBeforeNotifying(t *testing.T) {
	var events []string
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) (string, error) {
			events = append(events, "persist")
			return "id-1", nil
		},
	}
	notifier := &mockNotifier{
		sendFunc: func(*model.ContactMessage) bool {
			events = append(events, "notify")
			return true
		},
	}
	router := newContactRouter(repo, notifier)

	rec := postContact(router, `{"name":"Ana","phone":"555-1","message":"Hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"persist", "notify"}, events)
}

func TestSubmitStorageError(t *testing.T) {
	storageErr := fmt.Errorf("pq: connection reset by peer while writing to relation contactmessage %s", strings.Repeat("x", 150))
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *model.ContactMessage) (string, error) {
			return "", storageErr
		},
	}
	notifier := &mockNotifier{}
	router := newContactRouter(repo, notifier)

	rec := postContact(router, `{"name":"Ana","phone":"555-1","message":"Hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Zero(t, notifier.calls, "notification must not run when persistence failed")

	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Detail, "Database error: "))
	assert.Equal(t, "Database error: "+storageErr.Error()[:120], resp.Detail)
}

func TestSubmitPersistsFullMessageText(t *testing.T) {
	long := strings.Repeat("y", 800)
	repo := &mockContactRepository{}
	notifier := &mockNotifier{}
	router := newContactRouter(repo, notifier)

	rec := postContact(router, fmt.Sprintf(`{"name":"Ana","phone":"555-1","message":%q}`, long))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.lastMsg)
	// Storage keeps the full text; only the notification body is capped
	assert.Equal(t, long, repo.lastMsg.Message)
}
