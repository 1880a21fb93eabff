package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config captures the runtime configuration shared by every command.
// Values are resolved once at startup and treated as immutable session
// parameters from then on.
type Config struct {
	// Directory is the config store, one regular file per machine
	// configuration.
	Directory string
	// Emulator is the 86Box binary, either absolute or resolved on
	// $PATH.
	Emulator string
	// Language is an optional language code passed through to the
	// emulator.
	Language string
	// Fullscreen asks the emulator to start fullscreen.
	Fullscreen bool
	// Trace enables JSONL trace logging.
	Trace bool
	// LogFile overrides the trace destination.
	LogFile string
}

const (
	// DefaultDirName is the store directory created under the home
	// directory.
	DefaultDirName = ".emubox"
	// DefaultEmulator is looked up on $PATH unless overridden.
	DefaultEmulator = "86Box"
)

// SetDefaults registers fallback values on the shared viper instance.
func SetDefaults(home string) {
	viper.SetDefault("directory", filepath.Join(home, DefaultDirName))
	viper.SetDefault("emulator", DefaultEmulator)
	viper.SetDefault("language", "")
	viper.SetDefault("fullscreen", false)
	viper.SetDefault("trace", false)
	viper.SetDefault("log_file", "")
}

// Load materializes the configuration from viper's resolved state
// (defaults, config file, environment, bound flags).
func Load() (Config, error) {
	cfg := Config{
		Directory:  viper.GetString("directory"),
		Emulator:   viper.GetString("emulator"),
		Language:   strings.TrimSpace(viper.GetString("language")),
		Fullscreen: viper.GetBool("fullscreen"),
		Trace:      viper.GetBool("trace"),
		LogFile:    viper.GetString("log_file"),
	}

	dir, err := homedir.Expand(cfg.Directory)
	if err != nil {
		return Config{}, fmt.Errorf("expanding directory %q: %w", cfg.Directory, err)
	}
	cfg.Directory = dir

	emu, err := homedir.Expand(cfg.Emulator)
	if err != nil {
		return Config{}, fmt.Errorf("expanding emulator path %q: %w", cfg.Emulator, err)
	}
	cfg.Emulator = emu

	return cfg, nil
}

// Validate ensures required minimum configuration is present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return fmt.Errorf("config directory path is empty")
	}
	if strings.TrimSpace(c.Emulator) == "" {
		return fmt.Errorf("emulator path is empty")
	}
	return nil
}
