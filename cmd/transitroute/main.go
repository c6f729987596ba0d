package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Build-time variables set via ldflags.
var (
	version   = "0.3.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:3040"

var (
	backend    routeBackend
	flagURL    string
	flagKey    string
	flagFmt    string
	flagStops  string
	flagRoutes string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("transitroute version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("transitroute version %s-dev", version)
}

type configFile struct {
	// Flat format
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
	// Profile format
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "transitroute",
		Short:   "transitroute CLI: shortest paths over a transit network",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolveConfig()
			b, err := newBackend(cmd.Context())
			if err != nil {
				return err
			}
			backend = b
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "transitroute server URL (env: TRANSITROUTE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagKey, "api-key", "", "API key (env: TRANSITROUTE_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "text", "Output format: json|table|text")
	rootCmd.PersistentFlags().StringVar(&flagStops, "stops", "", "GeoJSON stops file; with --routes, query offline instead of the server")
	rootCmd.PersistentFlags().StringVar(&flagRoutes, "routes", "", "Route table file for offline queries")

	skipBackend := func(cmd *cobra.Command, args []string) error { return nil }

	initCmd := newInitCmd()
	initCmd.PersistentPreRunE = skipBackend
	doctorCmd := newDoctorCmd()
	doctorCmd.PersistentPreRunE = skipBackend
	importCmd := newImportCmd()
	importCmd.PersistentPreRunE = skipBackend

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newExamplesCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newStatsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".transitroute", "config.yaml"), nil
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultURL {
		if v := os.Getenv("TRANSITROUTE_URL"); v != "" {
			flagURL = v
		}
	}
	if flagKey == "" {
		flagKey = os.Getenv("TRANSITROUTE_API_KEY")
	}

	cfgPath, err := configPath()
	if err != nil {
		return
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	resolvedURL, resolvedKey := cfg.resolve()
	if flagURL == defaultURL && resolvedURL != "" {
		flagURL = resolvedURL
	}
	if flagKey == "" && resolvedKey != "" {
		flagKey = resolvedKey
	}
}

// resolve returns the active profile's settings, falling back to the flat keys.
func (cfg *configFile) resolve() (url, apiKey string) {
	url, apiKey = cfg.URL, cfg.APIKey
	if cfg.Profiles == nil {
		return url, apiKey
	}
	profileName := cfg.ActiveProfile
	if profileName == "" {
		profileName = "default"
	}
	if p, ok := cfg.Profiles[profileName]; ok {
		if p.URL != "" {
			url = p.URL
		}
		if p.APIKey != "" {
			apiKey = p.APIKey
		}
	}
	return url, apiKey
}
