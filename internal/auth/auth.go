// Package auth provides token validation and the claims model shared by the
// middleware and the repositories.
package auth

import (
	"crypto/rsa"
	"os"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Roles carried inside tokens. DASHBOARD and QRCODE are kiosk accounts used
// by the office wallboard and the check-in terminal.
const (
	RoleEmployee  = "EMPLOYEE"
	RoleAdmin     = "ADMIN"
	RoleDashboard = "DASHBOARD"
	RoleQRCode    = "QRCODE"
)

type ctxKey int

// Key is used to store/retrieve a Claims value from a context.Context.
const Key ctxKey = 1

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Authorized returns true if the claims hold one of the provided roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth validates tokens issued by this service.
type Auth struct {
	publicKey *rsa.PublicKey
}

// New loads the RSA private key from privateKeyFile and keeps its public half
// for token validation.
func New(privateKeyFile string) (*Auth, error) {
	keyData, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyData)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return &Auth{publicKey: &privateKey.PublicKey}, nil
}

// ValidateToken checks the token signature and returns its claims.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}

	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}
