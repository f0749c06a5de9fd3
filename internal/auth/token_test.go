package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	empID, err := issuer.Parse(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, empID)
}

func TestParsePreservesSnowflakeSizedIDs(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	// ids above 2^53 are not representable exactly as float64
	const id = int64(1957533893063247873)
	token, err := issuer.Issue(id)
	require.NoError(t, err)

	got, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	token, err := issuer.Issue(42)
	require.NoError(t, err)

	other := NewTokenIssuer(Config{Secret: "different", TTL: time.Hour})
	_, err = other.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: -time.Minute})
	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer(Config{Secret: "s3cret", TTL: time.Hour})
	_, err := issuer.Parse("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_TTL", "30m")
	cfg := ConfigFromEnv()
	require.Equal(t, "from-env", cfg.Secret)
	require.Equal(t, 30*time.Minute, cfg.TTL)

	t.Setenv("JWT_TTL", "bogus")
	cfg = ConfigFromEnv()
	require.Equal(t, 2*time.Hour, cfg.TTL)
}
