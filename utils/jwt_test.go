package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickfix/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	config.AppConfig = config.Config{SessionSecret: "test-secret"}

	token, err := GenerateSessionToken("admin")
	require.NoError(t, err)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	config.AppConfig = config.Config{SessionSecret: "test-secret"}

	token, err := GenerateSessionToken("admin")
	require.NoError(t, err)

	_, err = ParseSessionToken(token + "x")
	assert.Error(t, err)

	_, err = ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = config.Config{SessionSecret: "first-secret"}
	token, err := GenerateSessionToken("admin")
	require.NoError(t, err)

	config.AppConfig = config.Config{SessionSecret: "second-secret"}
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}
