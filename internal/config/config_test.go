package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.Variant != "single" {
		t.Errorf("expected variant 'single', got %s", cfg.Scene.Variant)
	}
	if cfg.Scene.Fidelity != "full" {
		t.Errorf("expected fidelity 'full', got %s", cfg.Scene.Fidelity)
	}
	if cfg.Scene.BoxX != 3.0 || cfg.Scene.BoxY != 3.0 || cfg.Scene.BoxZ != 3.0 {
		t.Errorf("expected 3x3x3 box, got %gx%gx%g",
			cfg.Scene.BoxX, cfg.Scene.BoxY, cfg.Scene.BoxZ)
	}
	if cfg.Scene.EdgeRadius != 0.5 {
		t.Errorf("expected edge radius 0.5, got %g", cfg.Scene.EdgeRadius)
	}
	if cfg.Scene.WalkLength != 40 {
		t.Errorf("expected walk length 40, got %d", cfg.Scene.WalkLength)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
scene:
  variant: walk
  fidelity: partial
  walk_length: 120
  seed: 99
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Scene.Variant != "walk" {
		t.Errorf("expected variant 'walk', got %s", cfg.Scene.Variant)
	}
	if cfg.Scene.WalkLength != 120 {
		t.Errorf("expected walk length 120, got %d", cfg.Scene.WalkLength)
	}
	if cfg.Scene.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Scene.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}

	// Values not present in the file keep their defaults
	if cfg.Scene.EdgeRadius != 0.5 {
		t.Errorf("expected default edge radius, got %g", cfg.Scene.EdgeRadius)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Scene.Variant = "map"
	cfg.Scene.WallMarker = "#"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Scene.Variant != "map" {
		t.Errorf("expected variant 'map', got %s", loaded.Scene.Variant)
	}
	if loaded.Scene.WallRune() != '#' {
		t.Errorf("expected wall rune '#', got %q", loaded.Scene.WallRune())
	}
}

func TestWallRune(t *testing.T) {
	s := SceneConfig{WallMarker: "#wall"}
	if s.WallRune() != '#' {
		t.Errorf("expected '#', got %q", s.WallRune())
	}

	s.WallMarker = ""
	if s.WallRune() != 'X' {
		t.Errorf("expected fallback 'X', got %q", s.WallRune())
	}
}
