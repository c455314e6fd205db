package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_TTL",
	"STRIPE_SECRET_KEY", "PAYMENT_CURRENCY", "PAYMENT_METHOD_TYPES",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "usd", cfg.PaymentCurrency)
	assert.Equal(t, []string{"card"}, cfg.PaymentMethodTypes)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9999\nPAYMENT_CURRENCY=EUR\n"), 0o600))
	clearEnv(t)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "eur", cfg.PaymentCurrency)
}

func TestLoad_ProdRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "real-secret")
	_, err = Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "STRIPE_SECRET_KEY")

	t.Setenv("STRIPE_SECRET_KEY", "sk_live_x")
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_TTL", "0s")

	_, err := Load(missingEnvFile(t))
	assert.ErrorContains(t, err, "JWT_TTL")
}
