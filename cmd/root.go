package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rilysh/emubox/internal/config"
	"github.com/rilysh/emubox/internal/logging"
	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/rilysh/emubox/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile      string
	configDir    string
	emulatorFlag string
	traceFlag    bool
	logFileFlag  string

	rootCmd = &cobra.Command{
		Use:   "emubox",
		Short: "Manage and launch 86Box machine configs",
		Long: `Emubox keeps a directory of 86Box machine configs and launches the
emulator against the one you pick from a terminal menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// ErrReported marks a failure whose details have already been printed.
// The caller should exit non-zero without repeating anything.
var ErrReported = errors.New("already reported")

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/emubox/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&configDir, "dir", "", "machine config directory (default is $HOME/.emubox)")
	rootCmd.PersistentFlags().StringVar(&emulatorFlag, "emulator", "", "86Box binary to launch")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "append trace events to the log file")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file path")
	viper.BindPFlag("directory", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("emulator", rootCmd.PersistentFlags().Lookup("emulator"))
	viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	home, err := homedir.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Join(home, ".config", "emubox"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	config.SetDefaults(home)

	viper.SetEnvPrefix("EMUBOX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults cover everything.
		// SetConfigFile reports the miss as a plain path error rather
		// than viper's not-found type.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			warn("reading config file: %v", err)
		}
	}
}

// runtimeConfig resolves the effective configuration for a command run
// and wires up the trace log before any work happens.
func runtimeConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logging.Configure(cfg.LogFile, cfg.Trace)
	traceStartup(cfg)
	return cfg, nil
}

func openStore(cfg config.Config) *store.Store {
	return store.New(cfg.Directory)
}

func notice(format string, args ...interface{}) {
	fmt.Printf("emubox: "+format+"\n", args...)
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "emubox: "+format+"\n", args...)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":      os.Args,
		"directory": cfg.Directory,
		"emulator":  cfg.Emulator,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
