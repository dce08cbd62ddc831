package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DEFAULT_RADIUS_MILES", "ALLOWED_ORIGINS", "LDAP_SERVER", "REDIS_ADDRESS", "ACCESS_TOKEN_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 25.0, cfg.DefaultRadiusMiles)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.LDAPEnabled())
	assert.Empty(t, cfg.RedisAddress)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DEFAULT_RADIUS_MILES", "50")
	t.Setenv("MAX_PAGE_SIZE", "10")
	t.Setenv("BUNDEBUG", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://finder.example.com, ,https://admin.example.com")
	t.Setenv("CANDIDATE_CACHE_TTL_SECONDS", "5")
	t.Setenv("LDAP_SERVER", "ldap://localhost:389")
	t.Setenv("LDAP_BIND_DN_TEMPLATE", "uid=%s,dc=example,dc=com")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 50.0, cfg.DefaultRadiusMiles)
	assert.Equal(t, 10, cfg.MaxPageSize)
	assert.True(t, cfg.BunDebug)
	assert.Equal(t, []string{"https://finder.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.CandidateCacheTTL)
	assert.True(t, cfg.LDAPEnabled())
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("DEFAULT_RADIUS_MILES", "-3")
	t.Setenv("DEFAULT_PAGE_SIZE", "many")
	t.Setenv("BUNDEBUG", "sometimes")

	cfg := Load()
	assert.Equal(t, 25.0, cfg.DefaultRadiusMiles)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.False(t, cfg.BunDebug)
}
