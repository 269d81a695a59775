// Package config holds the settings of one bak-rotate invocation.
// Values come from command-line flags only; there is no config file.
package config

type Config struct {
	Directory   string        `yaml:"directory" json:"directory" toml:"directory"`
	Size        string        `yaml:"size,omitempty" json:"size,omitempty" toml:"size,omitempty"`
	Time        string        `yaml:"time,omitempty" json:"time,omitempty" toml:"time,omitempty"`
	DryRun      bool          `yaml:"dryRun" json:"dryRun" toml:"dryRun"`
	OnError     string        `yaml:"onError" json:"onError" toml:"onError"`
	CreateBak   bool          `yaml:"createBak" json:"createBak" toml:"createBak"`
	Report      string        `yaml:"report" json:"report" toml:"report"`
	MetricsFile string        `yaml:"metricsFile,omitempty" json:"metricsFile,omitempty" toml:"metricsFile,omitempty"`
	Logging     LoggingConfig `yaml:"logging" json:"logging" toml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level" toml:"level"`    // "debug", "info", "warn", "error"
	Format string `yaml:"format" json:"format" toml:"format"` // "text", "json"
}

// Default returns the flag defaults.
func Default() Config {
	return Config{
		OnError: "abort",
		Report:  "none",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
