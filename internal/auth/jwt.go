// Package auth verifies access tokens minted by the external identity
// provider. The provider and this service share the HMAC secret; the claims
// are the provider's actor contract: user id, role, and the actor's
// company/investor profile association when one exists.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"venturelink_backend/internal/config"
	"venturelink_backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the authenticated actor identity carried by the token.
type Claims struct {
	UserID     string          `json:"user_id"`
	Role       models.UserRole `json:"role"`
	CompanyID  string          `json:"company_id,omitempty"`
	InvestorID string          `json:"investor_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for an actor. Used by seeds and tests; in
// production the identity provider issues tokens with the same claims.
func GenerateToken(userID string, role models.UserRole, companyID, investorID string) (string, error) {
	cfg := config.GetConfig()

	claims := &Claims{
		UserID:     userID,
		Role:       role,
		CompanyID:  companyID,
		InvestorID: investorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken verifies the signature and expiry and returns the actor claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
