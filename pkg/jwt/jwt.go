package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered JWT claims plus the session fields the
// application embeds on login. CompanyID is zero for administrators, who
// belong to no company.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"userId"`
	CompanyID int64  `json:"bedrijfId"`
	Role      string `json:"role"` // "Klant" | "Leverancier" | "Administrator"
}

// Config signing and validation parameters for session tokens.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// Generate signs a session token embedding userID, role and companyID,
// with issuer/audience claims and subject "auth".
func Generate(cfg Config, userID int64, role string, companyID int64) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   "auth",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiry)),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse validates the token signature, expiry, issuer, audience and
// subject, and returns the embedded session fields. Any failure invalidates
// the whole token.
func Parse(cfg Config, tokenString string) (userID int64, role string, companyID int64, err error) {
	if cfg.Secret == "" {
		return 0, "", 0, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithSubject("auth"),
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return 0, "", 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", 0, fmt.Errorf("invalid claims")
	}
	return claims.UserID, claims.Role, claims.CompanyID, nil
}
