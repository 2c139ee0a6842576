package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redis": map[string]any{
			"idempotencyTtl": "24h",
		},
		"kafka": map[string]any{
			"ordersTopic": "orders.placed",
		},
		"ledger": map[string]any{
			"strictHarvest": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_IDEMPOTENCYTTL", want: "redis.idempotencyTtl"},
		{envKey: "KAFKA_ORDERSTOPIC", want: "kafka.ordersTopic"},
		{envKey: "LEDGER_STRICTHARVEST", want: "ledger.strictHarvest"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultDeliveryCodeLength, cfg.Delivery.CodeLength)
	assert.Equal(t, defaultDeliveryCodeTTL, cfg.Delivery.CodeTTL)
	assert.False(t, cfg.Ledger.StrictHarvest)
	assert.NotNil(t, cfg.Postgres)
	assert.Greater(t, cfg.Farm.MaxRadiusKm, cfg.Farm.DefaultRadiusKm)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorEvery, cfg.Database.PoolMonitorInterval)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Delivery: &DeliveryConfig{CodeLength: 8, CodeTTL: time.Hour},
		Ledger:   &LedgerConfig{StrictHarvest: true},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"

	applyDefaults(cfg)

	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 8, cfg.Delivery.CodeLength)
	assert.Equal(t, time.Hour, cfg.Delivery.CodeTTL)
	assert.True(t, cfg.Ledger.StrictHarvest)
}
