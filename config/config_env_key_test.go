package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_AuthDefaults(t *testing.T) {
	var cfg Config

	if got := cfg.BcryptCost(); got != 10 {
		t.Fatalf("BcryptCost() = %d, want 10", got)
	}
	if got := cfg.AccessTokenTTL(); got != time.Hour {
		t.Fatalf("AccessTokenTTL() = %s, want 1h", got)
	}

	cfg.Auth = &AuthConfig{BcryptCost: 99, AccessTokenTTL: -time.Minute}
	if got := cfg.BcryptCost(); got != 10 {
		t.Fatalf("BcryptCost() with out-of-range value = %d, want 10", got)
	}
	if got := cfg.AccessTokenTTL(); got != time.Hour {
		t.Fatalf("AccessTokenTTL() with negative value = %s, want 1h", got)
	}

	cfg.Auth = &AuthConfig{BcryptCost: 12, AccessTokenTTL: 30 * time.Minute}
	if got := cfg.BcryptCost(); got != 12 {
		t.Fatalf("BcryptCost() = %d, want 12", got)
	}
	if got := cfg.AccessTokenTTL(); got != 30*time.Minute {
		t.Fatalf("AccessTokenTTL() = %s, want 30m", got)
	}
}
