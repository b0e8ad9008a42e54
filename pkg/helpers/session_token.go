package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionSigner signs session ids into the session cookie so a client cannot
// forge or guess another client's session id.
type SessionSigner struct {
	Secret []byte
}

func NewSessionSigner(secret string) *SessionSigner {
	return &SessionSigner{Secret: []byte(secret)}
}

// Sign returns an HS256 token carrying sid as its jti, valid until exp.
func (s *SessionSigner) Sign(sid string, exp time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{
		ID:        sid,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// Parse validates the token and returns the session id it carries.
func (s *SessionSigner) Parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tkn.Valid || claims.ID == "" {
		return "", errors.New("invalid token")
	}
	return claims.ID, nil
}
