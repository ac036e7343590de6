package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagVariant  = flag.String("scene", "", "Scene variant: single, walk or map")
	flagFidelity = flag.String("fidelity", "", "Mesh fidelity: basic, partial or full")
	flagLength   = flag.Int("length", 0, "Walk length (walk scene)")
	flagSeed     = flag.Int64("seed", 0, "Walk random seed (0 = time-based)")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagVariant != "" {
		cfg.Scene.Variant = *flagVariant
	}
	if *flagFidelity != "" {
		cfg.Scene.Fidelity = *flagFidelity
	}
	if *flagLength > 0 {
		cfg.Scene.WalkLength = *flagLength
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
