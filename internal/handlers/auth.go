package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/accelhub-dev/accelhub/internal/apperr"
	"github.com/accelhub-dev/accelhub/internal/auth"
	"github.com/accelhub-dev/accelhub/internal/models"
	"github.com/accelhub-dev/accelhub/internal/response"
	"github.com/accelhub-dev/accelhub/internal/utils"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	db     *gorm.DB
	domain string
}

func NewAuthHandler(db *gorm.DB, domain string) *AuthHandler {
	return &AuthHandler{db: db, domain: domain}
}

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	OrganizationID *uint  `json:"organization_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID *uint  `json:"organization_id"`
}

type SessionResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User

	err := h.db.Where("email = ?", req.Email).First(&existing).Error

	if err == nil {
		response.Error(ctx, apperr.Conflict("Email already exists"))
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(ctx, err)
		return
	}

	if req.OrganizationID != nil {
		var count int64
		if err := h.db.Model(&models.Organization{}).Where("id = ?", *req.OrganizationID).Count(&count).Error; err != nil {
			response.Error(ctx, err)
			return
		}
		if count == 0 {
			response.Error(ctx, apperr.Validation("Referenced organization does not exist", map[string]string{
				"organization_id": "organization not found",
			}))
			return
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(passwordHash),
		Role:           "member",
		OrganizationID: req.OrganizationID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		response.Error(ctx, err)
		return
	}

	session, err := h.issueSession(ctx, &user)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.Created(ctx, "User registered successfully", session)
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperr.BadRequest("Invalid request"))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := h.db.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, apperr.Unauthorized("Invalid email or password"))
			return
		}
		response.Error(ctx, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		response.Error(ctx, apperr.Unauthorized("Invalid email or password"))
		return
	}

	session, err := h.issueSession(ctx, &user)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Logged in successfully", session)
}

// Refresh exchanges the refresh cookie for a fresh access token and rotates
// the cookie.
func (h *AuthHandler) Refresh(ctx *gin.Context) {
	tokenString, err := ctx.Cookie(refreshCookieName)

	if err != nil || tokenString == "" {
		response.Error(ctx, apperr.Unauthorized("Refresh token is required"))
		return
	}

	token, err := auth.VerifyToken(tokenString)

	if err != nil || !token.Valid {
		response.Error(ctx, apperr.Unauthorized("Invalid or expired refresh token"))
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		response.Error(ctx, apperr.Unauthorized("Invalid token claims"))
		return
	}

	if tokenType, _ := claims["type"].(string); tokenType != auth.TypeRefresh {
		response.Error(ctx, apperr.Unauthorized("Token is not a refresh token"))
		return
	}

	userID, ok := auth.UserIDFromClaims(claims, "user_id")

	if !ok {
		response.Error(ctx, apperr.Unauthorized("Invalid user ID in token claims"))
		return
	}

	var user models.User

	if err := h.db.First(&user, userID).Error; err != nil {
		response.Error(ctx, apperr.Unauthorized("User not found"))
		return
	}

	session, err := h.issueSession(ctx, &user)

	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.OK(ctx, "Token refreshed successfully", session)
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		response.Error(ctx, apperr.Unauthorized("User not authenticated"))
		return
	}

	response.OK(ctx, "Current user retrieved successfully", UserResponse{
		ID:             currentUser.ID,
		Name:           currentUser.Name,
		Email:          currentUser.Email,
		Role:           currentUser.Role,
		OrganizationID: currentUser.OrganizationID,
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	h.setRefreshCookie(ctx, "", -1)
	response.OK(ctx, "Logged out successfully", nil)
}

func (h *AuthHandler) issueSession(ctx *gin.Context, user *models.User) (*SessionResponse, error) {
	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	h.setRefreshCookie(ctx, refreshToken, int(auth.RefreshTokenTTL.Seconds()))

	return &SessionResponse{
		User: UserResponse{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			OrganizationID: user.OrganizationID,
		},
		AccessToken: accessToken,
	}, nil
}

func (h *AuthHandler) setRefreshCookie(ctx *gin.Context, value string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
