package config_test

import (
	"testing"

	"github.com/patternplay/patternplay/pkg/catalog"
	"github.com/patternplay/patternplay/pkg/config"
)

func TestConfig_ValidateDefaults(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestConfig_ValidateRejectsBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid log level to fail validation")
	}
}

func TestConfig_ValidateRejectsUnknownGroup(t *testing.T) {
	cfg := config.Default()
	cfg.Groups = []string{"behavioral", "architectural"}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown group to fail validation")
	}
}

func TestConfig_GroupEnabled(t *testing.T) {
	tests := []struct {
		name    string
		groups  []string
		group   catalog.Group
		enabled bool
	}{
		{"empty filter allows all", nil, catalog.GroupStructural, true},
		{"listed group allowed", []string{"behavioral"}, catalog.GroupBehavioral, true},
		{"unlisted group filtered", []string{"behavioral"}, catalog.GroupCreational, false},
		{"multiple groups", []string{"behavioral", "structural"}, catalog.GroupStructural, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Groups = tt.groups

			if got := cfg.GroupEnabled(tt.group); got != tt.enabled {
				t.Errorf("GroupEnabled(%s) = %v, expected %v", tt.group, got, tt.enabled)
			}
		})
	}
}
