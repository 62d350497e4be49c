package config

const (
	DefaultCount      = 4
	DefaultOutput     = "table"
	DefaultRepository = "kartoffelquadrat/maxcolours"
)

// GetDefaultConfig returns the built-in configuration. No default seed is set,
// so generate requires one unless a config file provides it.
func GetDefaultConfig() Config {
	return Config{
		Defaults: Defaults{
			Count:  DefaultCount,
			Output: DefaultOutput,
		},
		Update: UpdateConfig{
			Repository: DefaultRepository,
		},
	}
}
