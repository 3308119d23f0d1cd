package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/accelhub-dev/accelhub/db"
	"github.com/accelhub-dev/accelhub/internal/auth"
	"github.com/accelhub-dev/accelhub/internal/config"
	"github.com/accelhub-dev/accelhub/internal/models"
)

const testSecret = "router-test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.Init(testSecret))

	dbPath := filepath.Join(t.TempDir(), "accelhub_router_test.db")

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	cfg := config.Config{
		JWTSecret:      testSecret,
		Port:           "3000",
		Env:            "test",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	return New(database, cfg, zap.NewNop()), database
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Fields  map[string]string `json:"fields"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}

	return w, env
}

func registerUser(t *testing.T, r *gin.Engine, email string) (token string, cookies []*http.Cookie) {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var session struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.AccessToken)

	return session.AccessToken, w.Result().Cookies()
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/startups", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Authorization token is required", env.Message)
}

func TestProtectedRouteRejectsExpiredToken(t *testing.T) {
	r, _ := setupRouter(t)

	claims := jwt.MapClaims{
		"user_id": 1,
		"type":    auth.TypeAccess,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w, env := doJSON(t, r, http.MethodGet, "/api/startups", expired, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", env.Message)
}

func TestProtectedRouteRejectsRefreshToken(t *testing.T) {
	r, database := setupRouter(t)
	registerUser(t, r, "member@example.com")

	var user models.User
	require.NoError(t, database.Where("email = ?", "member@example.com").First(&user).Error)

	refresh, err := auth.GenerateRefreshToken(user.ID)
	require.NoError(t, err)

	w, env := doJSON(t, r, http.MethodGet, "/api/startups", refresh, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Refresh token cannot be used for API access", env.Message)
}

func TestRegisterSetsRefreshCookie(t *testing.T) {
	r, _ := setupRouter(t)

	_, cookies := registerUser(t, r, "cookie@example.com")

	var refreshCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == "refreshToken" {
			refreshCookie = cookie
		}
	}

	require.NotNil(t, refreshCookie)
	assert.True(t, refreshCookie.HttpOnly)
	assert.NotEmpty(t, refreshCookie.Value)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r, _ := setupRouter(t)
	registerUser(t, r, "dup@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Again",
		"email":    "dup@example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", env.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)
	registerUser(t, r, "login@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestRefreshRotatesSession(t *testing.T) {
	r, _ := setupRouter(t)
	_, cookies := registerUser(t, r, "refresh@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var session struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.NotEmpty(t, session.AccessToken)
}

func TestOrganizationLifecycle(t *testing.T) {
	r, database := setupRouter(t)
	token, _ := registerUser(t, r, "admin@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/organizations", token, gin.H{
		"name": "Acme Ventures",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var created struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "acme-ventures", created.Slug)

	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/organizations/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Acme Ventures", fetched.Name)

	// Attach a user, the delete guard must refuse.
	require.NoError(t, database.Model(&models.User{}).Where("email = ?", "admin@example.com").Update("organization_id", created.ID).Error)

	w, env = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/organizations/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Message, "associated users")

	// Detach and retry.
	require.NoError(t, database.Model(&models.User{}).Where("email = ?", "admin@example.com").Update("organization_id", nil).Error)

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/organizations/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/organizations/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartupListPagination(t *testing.T) {
	r, database := setupRouter(t)
	token, _ := registerUser(t, r, "lister@example.com")

	organization := models.Organization{Name: "Acme", Slug: "acme"}
	require.NoError(t, database.Create(&organization).Error)

	for i := 0; i < 5; i++ {
		startup := models.Startup{OrganizationID: organization.ID, Name: fmt.Sprintf("Startup %d", i), Stage: "IDEA"}
		require.NoError(t, database.Create(&startup).Error)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/startups?page=1&pageSize=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Total       int64 `json:"total"`
			TotalPages  int   `json:"totalPages"`
			HasNextPage bool  `json:"hasNextPage"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))

	assert.Len(t, list.Data, 2)
	assert.Equal(t, int64(5), list.Meta.Total)
	assert.Equal(t, 3, list.Meta.TotalPages)
	assert.True(t, list.Meta.HasNextPage)
}

func TestStartupValidationErrorShape(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := registerUser(t, r, "shape@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/startups", token, gin.H{
		"organization_id": 999,
		"name":            "Ghost",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Fields, "organization_id")
}

func TestInvalidIDParameter(t *testing.T) {
	r, _ := setupRouter(t)
	token, _ := registerUser(t, r, "badid@example.com")

	w, env := doJSON(t, r, http.MethodGet, "/api/startups/abc", token, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}
