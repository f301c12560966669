package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiresDay(t *testing.T) {
	d, err := parseExpiresDay("30d")
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, d)

	d, err = parseExpiresDay("7")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d)

	for _, bad := range []string{"", "abc", "0d", "-1"} {
		_, err := parseExpiresDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_DAY", "2d")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []byte("s3cret"), cfg.JWT.Secret)
	assert.Equal(t, 48*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "host=db user=app password= dbname=booking port=5432 sslmode=disable", cfg.DB.DSN())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "booking")

	_, err := Load()
	assert.Error(t, err)
}
