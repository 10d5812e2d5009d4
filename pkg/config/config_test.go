package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Stitch.MaxPeriods != 8 {
		t.Errorf("Expected Stitch MaxPeriods to be 8, got %d", cfg.Stitch.MaxPeriods)
	}

	if cfg.Stitch.ReferenceStrategy != "most_information_rich" {
		t.Errorf("Expected default reference strategy, got %s", cfg.Stitch.ReferenceStrategy)
	}

	if cfg.HasDatabase() && os.Getenv("DATABASE_URL") == "" {
		t.Error("HasDatabase() should be false without DATABASE_URL")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("STITCH_MAX_PERIODS", "4")
	os.Setenv("REFERENCE_STRATEGY", "most_recent")
	os.Setenv("LOG_LEVEL", "info")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("STITCH_MAX_PERIODS")
		os.Unsetenv("REFERENCE_STRATEGY")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Stitch.MaxPeriods != 4 {
		t.Errorf("Expected Stitch MaxPeriods to be 4, got %d", cfg.Stitch.MaxPeriods)
	}

	if cfg.Stitch.ReferenceStrategy != "most_recent" {
		t.Errorf("Expected most_recent strategy, got %s", cfg.Stitch.ReferenceStrategy)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "weird")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail for unknown ENV")
	}
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	os.Setenv("REFERENCE_STRATEGY", "whatever")
	defer os.Unsetenv("REFERENCE_STRATEGY")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail for unknown REFERENCE_STRATEGY")
	}
}
