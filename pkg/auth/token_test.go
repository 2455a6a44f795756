package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestUserIDFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": "65a1b2c3"})

	id, err := UserIDFromToken(token)

	assert.NoError(t, err)
	assert.Equal(t, "65a1b2c3", id)
}

func TestUserIDFromToken_NumericID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": 42})

	id, err := UserIDFromToken(token)

	assert.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestUserIDFromToken_MissingID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "someone"})

	_, err := UserIDFromToken(token)

	assert.Error(t, err)
}

func TestUserIDFromToken_Garbage(t *testing.T) {
	tests := []string{
		"",
		"not-a-token",
		"a.b",       // two segments
		"a.!!!.c",   // undecodable payload
	}

	for _, tok := range tests {
		_, err := UserIDFromToken(tok)
		assert.Error(t, err, "token=%q", tok)
	}
}
