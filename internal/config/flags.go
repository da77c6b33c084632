package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFrames     = flag.Int("frames", -1, "Frames to simulate (0 runs until interrupted)")
	flagCharacters = flag.Int("characters", 0, "Characters to spawn")
	flagRig        = flag.String("rig", "", "Path to a rig YAML file")
	flagWatch      = flag.Bool("watch", false, "Reload the rig file on change")
	flagRecord     = flag.String("record", "", "Write collider snapshots to this file")
	flagShowBoxes  = flag.Bool("show-boxes", false, "Display collision boxes")
	flagRealtime   = flag.Bool("realtime", false, "Run frames at the configured tick rate")
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
		cfg.Debug.DumpGizmos = true
	}
	if *flagFrames >= 0 {
		cfg.Simulation.Frames = *flagFrames
	}
	if *flagCharacters > 0 {
		cfg.Simulation.Characters = *flagCharacters
	}
	if *flagRig != "" {
		cfg.Rig.Path = *flagRig
	}
	if *flagWatch {
		cfg.Rig.Watch = true
	}
	if *flagRecord != "" {
		cfg.Record.Path = *flagRecord
	}
	if *flagShowBoxes {
		cfg.Debug.ShowCollisionBoxes = true
	}
	if *flagRealtime {
		cfg.Simulation.Realtime = true
	}
}
