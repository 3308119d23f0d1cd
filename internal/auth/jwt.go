package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var jwtSecret string

func Init(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT secret is empty")
	}
	jwtSecret = secret
	return nil
}

func GenerateAccessToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"type":    TypeAccess,
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GenerateRefreshToken carries only the user id plus a random jti so refresh
// tokens are distinguishable from access tokens and from each other.
func GenerateRefreshToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    TypeRefresh,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("Invalid or expired token")
	}

	return token, nil
}

// UserIDFromClaims reads the subject id, accepting either the claim name this
// service issues ("user_id") or the generic "sub"/"id" variants seen in
// tokens minted by older deployments.
func UserIDFromClaims(claims jwt.MapClaims, claimName string) (uint, bool) {
	names := []string{claimName}
	if claimName == "" {
		names = []string{"user_id", "sub", "id"}
	}

	for _, name := range names {
		switch v := claims[name].(type) {
		case float64:
			return uint(v), true
		case string:
			var id uint
			if _, err := fmt.Sscanf(v, "%d", &id); err == nil {
				return id, true
			}
		}
	}

	return 0, false
}
