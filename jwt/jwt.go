package jwt

import (
	"time"

	"examination-backend/log"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const issuer = "examination-backend"

// StandardClaims is embedded by value: the parser calls Claims.Valid()
// before verifying the signature, and a pointer embed would leave it nil
// for tokens whose payload carries no registered claims.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

func (c *AccessClaims) IsAdmin() bool {
	return c.Role == "admin"
}

func NewAccessToken(email, role string, key []byte) (string, error) {
	return newToken(email, role, time.Now().Add(time.Hour*24), key)
}

// NewAdminToken mints a token with a caller-chosen expiry. Used by the
// offline keygen to bootstrap the first admin.
func NewAdminToken(email string, exp time.Time, key []byte) (string, error) {
	return newToken(email, "admin", exp, key)
}

func newToken(email, role string, exp time.Time, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &AccessClaims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: exp.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	})

	ss, err := token.SignedString(key)
	if err != nil {
		log.Logger.Error("signing failure", zap.Error(err))
		return "", err
	}

	return ss, nil
}

func ValidateAccessToken(token string, key []byte) (*AccessClaims, error) {
	t, err := jwt.ParseWithClaims(token, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		log.Logger.Debug("parse failure", zap.Error(err))
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpired
		}
		return nil, err
	}

	c := t.Claims.(*AccessClaims)
	if c.ExpiresAt < time.Now().Unix() {
		return nil, ErrExpired
	}

	return c, nil
}
