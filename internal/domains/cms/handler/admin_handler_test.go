package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lawfirm-cms/internal/domains/cms/service"
	"lawfirm-cms/internal/infrastructure/sheets"
	"lawfirm-cms/internal/shared/middleware"
	"lawfirm-cms/pkg/jwt"
)

// recordingWriter is a writable memorySource.
type recordingWriter struct {
	memorySource
	appended map[string]any
	deleted  string
}

func (w *recordingWriter) Append(ctx context.Context, table string, data map[string]any) (sheets.Row, error) {
	w.appended = data
	return sheets.Row{"id": "99", "title": "created"}, nil
}

func (w *recordingWriter) Update(ctx context.Context, table, id string, data map[string]any) (sheets.Row, error) {
	return sheets.Row{"id": id}, nil
}

func (w *recordingWriter) Delete(ctx context.Context, table, id string) error {
	w.deleted = table + "/" + id
	return nil
}

func newAdminRouter(t *testing.T, src sheets.Source) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	manager := jwt.NewManager("handler-test", time.Hour, "test")
	client := sheets.NewClient(src, zerolog.Nop())
	svc := service.NewAdminService(client, manager,
		service.AdminCredentials{Username: "admin", PasswordHash: string(hash)}, zerolog.Nop())

	r := gin.New()
	r.Use(middleware.Recovery())
	NewAdminHandler(svc, manager).RegisterRoutes(r.Group("/api/cms"),
		middleware.AuthMiddleware(manager), middleware.AdminMiddleware())
	return r, manager
}

func send(r *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := send(r, http.MethodPost, "/api/cms/auth/login", "", map[string]string{
		"username": "admin", "password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3600, resp.ExpiresIn)
	return resp.Token
}

func TestLogin(t *testing.T) {
	r, _ := newAdminRouter(t, &recordingWriter{})

	assert.NotEmpty(t, login(t, r))

	w := send(r, http.MethodPost, "/api/cms/auth/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = send(r, http.MethodPost, "/api/cms/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password")
}

func TestAdminCreateUpdateDelete(t *testing.T) {
	writer := &recordingWriter{}
	r, _ := newAdminRouter(t, writer)
	token := login(t, r)

	w := send(r, http.MethodPost, "/api/cms/admin/articles", token, map[string]any{
		"data": map[string]any{"title": "Hello", "status": "draft"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Hello", writer.appended["title"])

	w = send(r, http.MethodPut, "/api/cms/admin/profiles/p1", token, map[string]any{
		"data": map[string]any{"name": "Budi"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodDelete, "/api/cms/admin/hero_slides/h1", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "hero_slides/h1", writer.deleted)
}

func TestAdminValidation(t *testing.T) {
	r, _ := newAdminRouter(t, &recordingWriter{})
	token := login(t, r)

	w := send(r, http.MethodPost, "/api/cms/admin/users", token, map[string]any{
		"data": map[string]any{"title": "x"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPost, "/api/cms/admin/articles", token, map[string]any{"data": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPost, "/api/cms/admin/articles", token, map[string]any{
		"data": map[string]any{"bad column!": "x"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRequiresToken(t *testing.T) {
	r, manager := newAdminRouter(t, &recordingWriter{})

	w := send(r, http.MethodDelete, "/api/cms/admin/articles/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	editor, err := manager.GenerateAccessToken("editor", "editor")
	require.NoError(t, err)
	w = send(r, http.MethodDelete, "/api/cms/admin/articles/1", editor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminReadOnlySource(t *testing.T) {
	r, _ := newAdminRouter(t, memorySource{})
	token := login(t, r)

	w := send(r, http.MethodDelete, "/api/cms/admin/articles/1", token, nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
