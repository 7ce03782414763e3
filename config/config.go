package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	logcfg "github.com/ncobase/taskboard/logging/logger/config"
	"github.com/spf13/viper"
)

var (
	config *Config
	path   string
	once   sync.Once
	mu     sync.Mutex
	v      = viper.New()
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Logger   *logcfg.Config
	Observes *Observes
	Board    *Board
	Viper    *viper.Viper
}

// SetPath sets the configuration file used by Init and Reload.
func SetPath(p string) {
	mu.Lock()
	defer mu.Unlock()
	path = p
}

// Init initializes and loads the configuration once.
func Init() (cfg *Config, err error) {
	once.Do(func() {
		cfg, err = LoadConfig(path)
		if err == nil {
			mu.Lock()
			config = cfg
			mu.Unlock()
		}
	})
	if cfg == nil && err == nil {
		cfg = config
	}
	return cfg, err
}

// GetConfig returns the configuration.
// It does not handle errors internally; instead, it returns the error for the caller to handle.
func GetConfig() (*Config, error) {
	mu.Lock()
	c := config
	mu.Unlock()
	if c != nil {
		return c, nil
	}
	c, err := Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return c, nil
}

// LoadConfig loads the configuration from the file.
// An explicit path must exist; when searching default locations a missing
// file falls back to built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	vp := viper.New()
	if err := readInto(vp, configPath); err != nil {
		return nil, err
	}
	return fromViper(vp), nil
}

func readInto(vp *viper.Viper, configPath string) error {
	if configPath != "" {
		vp.SetConfigFile(configPath)
		if err := vp.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	vp.SetConfigName("config")
	vp.AddConfigPath(".")
	vp.AddConfigPath("$HOME/.taskboard")
	vp.AddConfigPath("/etc/taskboard")
	if ex, err := os.Executable(); err == nil {
		vp.AddConfigPath(filepath.Dir(ex))
	}

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func fromViper(vp *viper.Viper) *Config {
	return &Config{
		AppName:  valueOr(vp, "app_name", "taskboard", vp.GetString),
		RunMode:  valueOr(vp, "run_mode", "release", vp.GetString),
		Logger:   logcfg.GetConfig(vp),
		Observes: getObservesConfig(vp),
		Board:    getBoardConfig(vp),
		Viper:    vp,
	}
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	if err := readInto(v, path); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	config = fromViper(v)
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) error {
	mu.Lock()
	if err := readInto(v, path); err != nil {
		mu.Unlock()
		return err
	}
	mu.Unlock()

	if v.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
			return
		}
		mu.Lock()
		c := config
		mu.Unlock()
		callback(c)
	})
	v.WatchConfig()
	return nil
}
