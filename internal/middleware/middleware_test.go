package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(CORS())
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c)})
	}
	r.GET("/public", m.Enforce(PolicyPublic), handler)
	r.GET("/optional", m.Enforce(PolicyOptional), handler)
	r.DELETE("/admin", m.Enforce(PolicyAdmin), handler)
	r.POST("/mixed", m.EnforceFunc(func(c *gin.Context) Policy {
		if c.Query("action") == "download" {
			return PolicyPublic
		}
		return PolicyAdmin
	}), handler)
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestAdminPolicy(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret"})
	r := newTestRouter(NewAuthMiddleware(jwtService))

	w := do(r, http.MethodDelete, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", decodeError(t, w))

	w = do(r, http.MethodDelete, "/admin", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", decodeError(t, w))

	token, _, err := jwtService.GenerateToken(1, "admin")
	require.NoError(t, err)
	w = do(r, http.MethodDelete, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAndPublicPolicies(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret"})
	r := newTestRouter(NewAuthMiddleware(jwtService))
	token, _, err := jwtService.GenerateToken(1, "admin")
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = do(r, http.MethodGet, "/optional", token)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())

	// public routes never look at the token
	w = do(r, http.MethodGet, "/public", token)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestEnforceFuncChoosesPerRequest(t *testing.T) {
	r := newTestRouter(NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "secret"})))

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/mixed?action=download&id=1", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/mixed", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "secret"})))

	w := do(r, http.MethodOptions, "/admin", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperrors.NewValidationError("name is required"), http.StatusBadRequest, "name is required"},
		{apperrors.NewInvalidCredentialsError(), http.StatusUnauthorized, "Invalid credentials"},
		{apperrors.NewResourceNotFoundError("exam not found"), http.StatusNotFound, "exam not found"},
		{apperrors.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
		{apperrors.NewConflictError("exam already exists"), http.StatusConflict, "exam already exists"},
		{apperrors.NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "slow down"},
		{apperrors.Wrap(assert.AnError, "failed to list exams"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

		HandleAPIError(c, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.msg)
		assert.Equal(t, tc.msg, decodeError(t, w))
	}
}

func TestFormatValidationError(t *testing.T) {
	type body struct {
		ExamID int64  `json:"exam_id" binding:"required,gt=0"`
		Status string `json:"status" binding:"omitempty,oneof=active inactive"`
	}

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b) {
			return
		}
		c.Status(http.StatusOK)
	})

	send := func(payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := send(`{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "exam_id is required; status must be one of: active inactive", decodeError(t, w))

	w = send(`{"exam_id":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "exam_id must be of type int64", decodeError(t, w))

	w = send(`{`)
	assert.Equal(t, "Invalid JSON body", decodeError(t, w))

	assert.Equal(t, http.StatusOK, send(`{"exam_id":3}`).Code)
}
