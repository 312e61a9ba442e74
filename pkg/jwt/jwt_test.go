package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func TestGenerateYParse(t *testing.T) {
	token, err := Generate(testSecret, 42, "Maria Lopez", 1, "negociaciones-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Maria Lopez", claims.Name)
	assert.Equal(t, 1, claims.Role)
	assert.Equal(t, "negociaciones-api", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := Generate(testSecret, 42, "Maria", 0, "negociaciones-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate(testSecret, 42, "Maria", 0, "negociaciones-api", -5)
	require.NoError(t, err)

	_, err = Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", 42, "Maria", 0, "negociaciones-api", 60)
	assert.Error(t, err)
}
