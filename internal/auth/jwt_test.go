package auth

import (
	"testing"
	"time"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "test-secret",
		Expiry: 24 * time.Hour,
		Issuer: "unnativ-test",
	}
}

func TestGenerateAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	cases := []struct {
		name string
		id   uint
		kind string
	}{
		{"athlete", 7, domain.KindAthlete},
		{"organization", 12, domain.KindOrganization},
		{"donor", 99, domain.KindDonor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := GenerateToken(cfg, tc.id, tc.kind)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := ParseToken(cfg, token)
			require.NoError(t, err)
			assert.Equal(t, tc.id, claims.PrincipalID)
			assert.Equal(t, tc.kind, claims.Kind)
		})
	}
}

func TestParseRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiry = -time.Minute

	token, err := GenerateToken(cfg, 1, domain.KindAthlete)
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsTampered(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(cfg, 1, domain.KindAthlete)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(cfg, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(cfg, 1, domain.KindDonor)
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "another-secret"
	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	cfg := testJWTConfig()
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseToken(cfg, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
