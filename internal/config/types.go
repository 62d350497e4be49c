package config

// Config is the top-level configuration structure for maxcolours.
type Config struct {
	Defaults Defaults     `yaml:"defaults"`
	Update   UpdateConfig `yaml:"update"`
}

// Defaults are used when a command or tool call leaves a value out.
type Defaults struct {
	Count  int    `yaml:"count,omitempty"`  // Number of colours to generate
	Seed   string `yaml:"seed,omitempty"`   // Hex seed used when none is given, e.g. "#ff0000"
	Output string `yaml:"output,omitempty"` // "table", "json" or "yaml"
}

// UpdateConfig controls self-update.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // GitHub owner/name slug that publishes releases
}
