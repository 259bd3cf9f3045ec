package utils

import (
	"errors"
	"os"
	"time"

	models "green-saas/app/models/postgresql"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "green-saas"

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "green-saas-dev-secret"
	}
	return []byte(secret)
}

// GenerateSessionToken signs a token that points at a stored session. The
// token alone is not enough to authenticate: the session must still exist.
func GenerateSessionToken(s *models.Session) (string, error) {
	claims := &models.JWTClaims{
		SessionID: s.ID.String(),
		Email:     s.Email,
		Role:      s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ValidateSessionToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&models.JWTClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
