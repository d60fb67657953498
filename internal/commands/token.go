package commands

import (
	"crypto/rsa"
	"os"
	"time"

	"hrmis/backend/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	accessTokenTTL  = 12 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// AuthClaims is the minimal identity baked into issued tokens.
type AuthClaims struct {
	ID   int
	Role string
}

func loadPrivateKey(privateKeyFile string) (*rsa.PrivateKey, error) {
	keyData, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyData)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return privateKey, nil
}

// GenToken issues an access/refresh token pair for the given identity.
func GenToken(userClaims AuthClaims, privateKeyFile string) (string, string, error) {
	privateKey, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return "", "", err
	}

	now := time.Now()

	accessClaims := auth.Claims{
		UserId: userClaims.ID,
		Role:   userClaims.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, accessClaims).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshClaims := auth.Claims{
		UserId: userClaims.ID,
		Role:   userClaims.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
		},
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, refreshClaims).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens validates a refresh request. The access token signature must
// check out (expiry is ignored, it is being refreshed), the refresh token must
// still be live, and both must belong to the same user.
func VerifyTokens(accessToken, refreshToken, privateKeyFile string) (*auth.Claims, *auth.Claims, error) {
	a, err := auth.New(privateKeyFile)
	if err != nil {
		return nil, nil, err
	}

	refreshClaims, err := a.ValidateToken(refreshToken)
	if err != nil {
		return nil, nil, errors.Wrap(err, "validating refresh token")
	}

	// The access token is allowed to be expired here, its signature is not.
	privateKey, err := loadPrivateKey(privateKeyFile)
	if err != nil {
		return nil, nil, err
	}

	var accessClaims auth.Claims
	_, err = jwt.ParseWithClaims(accessToken, &accessClaims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &privateKey.PublicKey, nil
	})
	if err != nil {
		ve, ok := err.(*jwt.ValidationError)
		if !ok || ve.Errors&jwt.ValidationErrorExpired == 0 {
			return nil, nil, errors.Wrap(err, "validating access token")
		}
	}

	if accessClaims.UserId != refreshClaims.UserId {
		return nil, nil, errors.New("token pair mismatch")
	}

	return &accessClaims, &refreshClaims, nil
}
