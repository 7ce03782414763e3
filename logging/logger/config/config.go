package config

import (
	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

const (
	defaultLevel  = 4 // logrus.InfoLevel
	defaultFormat = "text"
	defaultOutput = "stderr"
)

// Default returns the configuration used when no logger section exists
func Default() *Config {
	return &Config{
		Level:  defaultLevel,
		Format: defaultFormat,
		Output: defaultOutput,
	}
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	if !v.IsSet("logger") {
		return Default()
	}

	cfg := &Config{
		Level:      defaultLevel,
		Format:     v.GetString("logger.format"),
		Output:     v.GetString("logger.output"),
		OutputFile: v.GetString("logger.output_file"),
	}
	if v.IsSet("logger.level") {
		cfg.Level = v.GetInt("logger.level")
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutput
	}
	return cfg
}
