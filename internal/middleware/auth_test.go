package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/accelhub-dev/accelhub/db"
	"github.com/accelhub-dev/accelhub/internal/auth"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/types"
)

const testSecret = "middleware-test-secret"

func setupAuthTest(t *testing.T, cfg AuthConfig) (*gin.Engine, *models.User) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.Init(testSecret))

	dbPath := filepath.Join(t.TempDir(), "accelhub_mw_test.db")

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	user := models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: "member"}
	require.NoError(t, database.Create(&user).Error)

	r := gin.New()
	r.GET("/protected", Auth(database, cfg), func(ctx *gin.Context) {
		current := ctx.MustGet(types.ContextUserKey).(AuthenticatedUser)
		ctx.JSON(http.StatusOK, gin.H{"email": current.Email})
	})

	return r, &user
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestAuthDefaultConfigAcceptsIssuedToken(t *testing.T) {
	r, user := setupAuthTest(t, AuthConfig{})

	token, err := auth.GenerateAccessToken(user.ID, user.Email)
	require.NoError(t, err)

	w := get(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
}

func TestAuthDefaultConfigAcceptsSubClaim(t *testing.T) {
	r, user := setupAuthTest(t, AuthConfig{})

	token := signToken(t, jwt.MapClaims{"sub": float64(user.ID)})

	w := get(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthCustomClaimName(t *testing.T) {
	r, user := setupAuthTest(t, AuthConfig{ClaimName: "uid"})

	accepted := signToken(t, jwt.MapClaims{"uid": float64(user.ID)})
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+accepted).Code)

	// With an explicit claim name configured the fallbacks are off.
	rejected := signToken(t, jwt.MapClaims{"user_id": float64(user.ID)})
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+rejected).Code)
}

func TestAuthLookupByEmail(t *testing.T) {
	r, user := setupAuthTest(t, AuthConfig{LookupByEmail: true})

	token := signToken(t, jwt.MapClaims{"email": user.Email})

	w := get(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
}

func TestAuthLookupByEmailUnknownUser(t *testing.T) {
	r, _ := setupAuthTest(t, AuthConfig{LookupByEmail: true})

	token := signToken(t, jwt.MapClaims{"email": "ghost@example.com"})

	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r, _ := setupAuthTest(t, AuthConfig{})

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer").Code)
}
