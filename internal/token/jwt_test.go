package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	p := model.Principal{UserID: uuid.New(), Email: "a@x.com"}

	access, err := j.GenerateAccessToken(p)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	p := model.Principal{UserID: uuid.New(), Email: "a@x.com"}

	access, err := j.GenerateAccessToken(p)
	require.NoError(t, err)

	other := NewJWT("different")
	_, err = other.ParseAccessToken(access)
	require.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := &JWT{secretKey: "secret"}
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: uuid.New(),
		Email:  "a@x.com",
	})
	tokenString, err := expired.SignedString([]byte(j.secretKey))
	require.NoError(t, err)

	_, err = j.ParseAccessToken(tokenString)
	require.Error(t, err)
}

func TestJWT_MissingUserID(t *testing.T) {
	j := &JWT{secretKey: "secret"}
	now := time.Now()
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "a@x.com",
	})
	tokenString, err := anonymous.SignedString([]byte(j.secretKey))
	require.NoError(t, err)

	_, err = j.ParseAccessToken(tokenString)
	require.Error(t, err)
}

func TestJWT_GarbageToken(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.ParseAccessToken("not-a-token")
	require.Error(t, err)
}
