package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_DefaultLimitAboveMax(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Recommender: RecommenderConfig{DefaultLimit: 100, MaxLimit: 50},
		Pricing:     PricingConfig{MinRate: 10, MaxRate: 150},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for default_limit > max_limit")
	}
}

func TestValidate_NegativeQuota(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Quotas: QuotasConfig{RecommendPerDay: -1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative quota")
	}
}

func TestValidate_InvertedRateBounds(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Pricing: PricingConfig{MinRate: 200, MaxRate: 150},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for min_rate > max_rate")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Recommender.MaxFeatures != 5000 {
		t.Errorf("expected MaxFeatures=5000, got %d", cfg.Recommender.MaxFeatures)
	}
	if cfg.Recommender.MaxDocFraction != 0.95 {
		t.Errorf("expected MaxDocFraction=0.95, got %g", cfg.Recommender.MaxDocFraction)
	}
	if cfg.Recommender.DefaultLimit != 10 {
		t.Errorf("expected DefaultLimit=10, got %d", cfg.Recommender.DefaultLimit)
	}
	if cfg.Recommender.MaxLimit != 50 {
		t.Errorf("expected MaxLimit=50, got %d", cfg.Recommender.MaxLimit)
	}
	if cfg.Recommender.MaxBatchSize != 100 {
		t.Errorf("expected MaxBatchSize=100, got %d", cfg.Recommender.MaxBatchSize)
	}
	if cfg.Pricing.MinSamples != 10 {
		t.Errorf("expected MinSamples=10, got %d", cfg.Pricing.MinSamples)
	}
	if cfg.Pricing.MinRate != 10 {
		t.Errorf("expected MinRate=10, got %g", cfg.Pricing.MinRate)
	}
	if cfg.Pricing.MaxRate != 150 {
		t.Errorf("expected MaxRate=150, got %g", cfg.Pricing.MaxRate)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Recommender: RecommenderConfig{
			MaxFeatures: 1000, MaxDocFraction: 0.8, DefaultLimit: 5, MaxLimit: 20, MaxBatchSize: 50,
		},
		Pricing: PricingConfig{MinSamples: 25, MinRate: 20, MaxRate: 200},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Recommender.MaxFeatures != 1000 {
		t.Errorf("expected MaxFeatures=1000, got %d", cfg.Recommender.MaxFeatures)
	}
	if cfg.Recommender.MaxDocFraction != 0.8 {
		t.Errorf("expected MaxDocFraction=0.8, got %g", cfg.Recommender.MaxDocFraction)
	}
	if cfg.Pricing.MinSamples != 25 {
		t.Errorf("expected MinSamples=25, got %d", cfg.Pricing.MinSamples)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TM_TEST_ADDR", "redis-prod:6379")

	in := []byte("addrs: [\"${TM_TEST_ADDR}\"]\npassword: \"${TM_TEST_MISSING:-fallback}\"\n")
	out := string(expandEnvVars(in))

	if out != "addrs: [\"redis-prod:6379\"]\npassword: \"fallback\"\n" {
		t.Errorf("unexpected expansion result:\n%s", out)
	}
}
