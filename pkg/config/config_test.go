package config_test

import (
	"testing"

	"github.com/hearthstead/floorcore/pkg/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := config.DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
}

func TestLoadConfigFromBytesFillsDefaults(t *testing.T) {
	cfg, err := config.LoadConfigFromBytes([]byte("doorWidth: 3.25\n"))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.DoorWidth != 3.25 {
		t.Fatalf("DoorWidth = %v, want 3.25", cfg.DoorWidth)
	}
	if cfg.HallwayWidth != 3.5 {
		t.Fatalf("HallwayWidth = %v, want default 3.5", cfg.HallwayWidth)
	}
}

func TestLoadConfigFromBytesRejectsOutOfRange(t *testing.T) {
	_, err := config.LoadConfigFromBytes([]byte("hallwayWidth: 100\n"))
	if err == nil {
		t.Fatal("expected validation error for out-of-range hallwayWidth")
	}
}

func TestHallwayWidthPreset(t *testing.T) {
	w, err := config.HallwayAccessible.Width()
	if err != nil {
		t.Fatalf("Width: %v", err)
	}
	if w != 4.0 {
		t.Fatalf("accessible width = %v, want 4.0", w)
	}
}
