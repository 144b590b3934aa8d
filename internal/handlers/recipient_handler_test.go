package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outreachai_backend/internal/models"
	"outreachai_backend/internal/repositories"
	"outreachai_backend/internal/services"
	"outreachai_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecipientRepo struct {
	byID map[string]*models.Recipient
	seq  int
}

func newMemRecipientRepo() *memRecipientRepo {
	return &memRecipientRepo{byID: map[string]*models.Recipient{}}
}

func (m *memRecipientRepo) Create(r *models.Recipient) error {
	m.seq++
	r.ID = fmt.Sprintf("rcp-%d", m.seq)
	m.byID[r.ID] = r
	return nil
}

func (m *memRecipientRepo) FindByIDForUser(id, userID string) (*models.Recipient, error) {
	r, ok := m.byID[id]
	if !ok || r.UserID != userID {
		return nil, repositories.ErrRecipientNotFound
	}
	return r, nil
}

func (m *memRecipientRepo) FindByIDsForUser(ids []string, userID string) ([]models.Recipient, error) {
	return nil, nil
}

func (m *memRecipientRepo) ListByUser(userID, query string, page, pageSize int) ([]models.Recipient, int64, error) {
	return nil, 0, nil
}

func (m *memRecipientRepo) CountByUser(userID string) (int64, error) { return 0, nil }
func (m *memRecipientRepo) Update(r *models.Recipient) error         { return nil }
func (m *memRecipientRepo) Delete(id, userID string) error           { return nil }

func recipientRouter(repo *memRecipientRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
	})

	base := NewBaseHandler(validator.New())
	svc := services.NewRecipientService(repo)
	h := NewRecipientHandler(base, svc, nil)
	r.POST("/recipients", h.Create)
	r.GET("/recipients/:id", h.Get)
	return r
}

func TestRecipientCreate_InvalidEmailRejected(t *testing.T) {
	repo := newMemRecipientRepo()
	r := recipientRouter(repo, "user-1")

	body := `{"name":"Dana","email":"not-an-email"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	assert.Contains(t, w.Body.String(), "valid email address")
	assert.Empty(t, repo.byID)
}

func TestRecipientCreate_PersistsWithTruncation(t *testing.T) {
	repo := newMemRecipientRepo()
	r := recipientRouter(repo, "user-1")

	longName := strings.Repeat("n", 250)
	payload := map[string]string{
		"name":         longName,
		"email":        "dana@example.com",
		"organization": "Acme",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipients", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Name, 200)
	assert.Equal(t, "dana@example.com", resp.Email)

	stored, ok := repo.byID[resp.ID]
	require.True(t, ok)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Len(t, stored.Name, 200)
}

func TestRecipientCreate_Unauthenticated(t *testing.T) {
	r := recipientRouter(newMemRecipientRepo(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipients",
		strings.NewReader(`{"name":"Dana","email":"dana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipientGet_ForeignRecipientIs404(t *testing.T) {
	repo := newMemRecipientRepo()
	repo.byID["rcp-9"] = &models.Recipient{
		BaseModel: models.BaseModel{ID: "rcp-9"},
		UserID:    "someone-else",
		Name:      "Hidden",
		Email:     "hidden@example.com",
	}
	r := recipientRouter(repo, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipients/rcp-9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
