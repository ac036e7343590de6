// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene generation settings.
type SceneConfig struct {
	Variant    string  `yaml:"variant"`  // single, walk or map
	Fidelity   string  `yaml:"fidelity"` // basic, partial or full
	BoxX       float32 `yaml:"box_x"`
	BoxY       float32 `yaml:"box_y"`
	BoxZ       float32 `yaml:"box_z"`
	EdgeRadius float32 `yaml:"edge_radius"`
	CellSize   float32 `yaml:"cell_size"`
	WalkLength int     `yaml:"walk_length"`
	Seed       int64   `yaml:"seed"` // 0 = time-based
	WallMarker string  `yaml:"wall_marker"`
}

// WallRune returns the wall marker as a rune. Falls back to 'X' when
// the config value is empty; extra characters are ignored.
func (s SceneConfig) WallRune() rune {
	for _, r := range s.WallMarker {
		return r
	}
	return 'X'
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Variant:    "single",
			Fidelity:   "full",
			BoxX:       3.0,
			BoxY:       3.0,
			BoxZ:       3.0,
			EdgeRadius: 0.5,
			CellSize:   3.0,
			WalkLength: 40,
			Seed:       0,
			WallMarker: "X",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
