package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/admin-revendedores/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "admin-revendedores-test"
	testExpMin = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Generate / Parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRolYCategoria(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Revendedor", "cat2", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, category, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "Revendedor", role)
	assert.Equal(t, "cat2", category)
}

func TestJWT_GenerateAndParse_SinCategoria(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Administrador", "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, role, category, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "Administrador", role)
	assert.Empty(t, category, "un administrador no lleva categoría de revendedor")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Administrador", "", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Administrador", "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "Administrador", "", testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, _, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ExpiresAt — lectura sin verificar firma, usada por el cliente
// ──────────────────────────────────────────────────────────────────────────────

// El cliente no conoce el secreto del backend: ExpiresAt debe leer la
// expiración aunque la firma no pueda validarse.
func TestExpiresAt_LeeExpiracionSinSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Editor", "", testIssuer, testExpMin)
	require.NoError(t, err)

	exp, ok := pkgjwt.ExpiresAt(tok)
	require.True(t, ok, "un JWT con exp debe reportar su expiración")
	assert.WithinDuration(t, time.Now().Add(testExpMin*time.Minute), exp, 5*time.Second)
}

func TestExpiresAt_TokenOpaco_NoReportaExpiracion(t *testing.T) {
	_, ok := pkgjwt.ExpiresAt("token-opaco-que-no-es-jwt")
	assert.False(t, ok, "un token que no es JWT se considera vigente y decide el backend")
}
