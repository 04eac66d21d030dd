package config

import "flag"

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile        = flag.String("log-file", "", "Write logs to this file as well")
	flagConeResolution = flag.Int("cone-resolution", 0, "Angular steps around the cone base")
	flagRingSegments   = flag.Int("ring-segments", 0, "Torus segments around the ring")
	flagTubeSegments   = flag.Int("tube-segments", 0, "Torus segments around the tube")
	flagLegacyTriangle = flag.Bool("legacy-triangle", false, "Draw the right-triangle outline instead of the isosceles one")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after global flags.
func Args() []string {
	return flag.Args()
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagConeResolution > 0 {
		cfg.Mesh.ConeResolution = *flagConeResolution
	}
	if *flagRingSegments > 0 {
		cfg.Mesh.RingSegments = *flagRingSegments
	}
	if *flagTubeSegments > 0 {
		cfg.Mesh.TubeSegments = *flagTubeSegments
	}
	if *flagLegacyTriangle {
		cfg.Display.LegacyTriangle = true
	}
}
