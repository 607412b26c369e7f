package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mesalink_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func testClaims(barId *uuid.UUID, exp time.Time) *structs.AuthClaims {
	return &structs.AuthClaims{
		Sub:   uuid.New(),
		Email: "staff@example.com",
		Role:  "staff",
		BarId: barId,
		Iat:   time.Now(),
		Exp:   exp,
		Jti:   uuid.New(),
	}
}

func TestCreateAndParseToken(t *testing.T) {
	barId := uuid.New()
	claims := testClaims(&barId, time.Now().Add(time.Hour))

	token, err := CreateToken(claims, testSecret)
	require.NoError(t, err)

	parsed, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, claims.Sub, parsed.Sub)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Role, parsed.Role)
	require.NotNil(t, parsed.BarId)
	assert.Equal(t, barId, *parsed.BarId)
}

func TestParseTokenWithoutBarScope(t *testing.T) {
	claims := testClaims(nil, time.Now().Add(time.Hour))

	token, err := CreateToken(claims, testSecret)
	require.NoError(t, err)

	parsed, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Nil(t, parsed.BarId)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := CreateToken(testClaims(nil, time.Now().Add(time.Hour)), testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestExtractClaimsFromCookie(t *testing.T) {
	barId := uuid.New()
	token, err := CreateToken(testClaims(&barId, time.Now().Add(time.Hour)), testSecret)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: token})

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims.BarId)
	assert.Equal(t, barId, *claims.BarId)
}

func TestExtractClaimsRejectsExpiredToken(t *testing.T) {
	token, err := CreateToken(testClaims(nil, time.Now().Add(-time.Minute)), testSecret)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: token})

	_, err = ExtractClaims(r, testSecret)
	assert.Error(t, err)
}

func TestExtractClaimsWithoutCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/orders", nil)

	_, err := ExtractClaims(r, testSecret)
	assert.Error(t, err)
}
