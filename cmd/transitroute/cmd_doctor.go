package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/transitroute/client"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config, server, readiness and auth",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func runDoctor() error {
	fmt.Println("\ntransitroute doctor")
	fmt.Println("===================")

	results := doctorChecks()

	fmt.Println()
	allPassed := true
	for _, r := range results {
		mark := "✅"
		if !r.Passed {
			mark = "❌"
			allPassed = false
		}
		if r.Detail != "" {
			fmt.Printf("%s %s: %s\n", mark, r.Name, r.Detail)
		} else {
			fmt.Printf("%s %s\n", mark, r.Name)
		}
		if !r.Passed && r.Hint != "" {
			fmt.Printf("   Hint: %s\n", r.Hint)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("❌ Some checks failed.")
		return fmt.Errorf("doctor found issues")
	}
	fmt.Println("✅ All checks passed!")
	return nil
}

func doctorChecks() []checkResult {
	var results []checkResult

	cfgPath, cfg, cfgErr := doctorLoadConfig()
	if cfgErr != nil {
		results = append(results, checkResult{
			Name: "Config file", Passed: false,
			Detail: cfgPath,
			Hint:   "Run: transitroute init",
		})
	} else {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("found (%s)", cfgPath),
		})
	}

	url, apiKey := doctorResolveSettings(cfg)
	results = append(results, checkResult{Name: "Server URL", Passed: true, Detail: url})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := client.New(url, client.WithAPIKey(apiKey))

	health, err := c.Health(ctx)
	if err != nil {
		return append(results, checkResult{
			Name: "Server reachable", Passed: false,
			Detail: url,
			Hint:   fmt.Sprintf("Is transitroute-server running?\n   Error: %v", err),
		})
	}
	results = append(results, checkResult{
		Name: "Server reachable", Passed: true,
		Detail: fmt.Sprintf("%s, %d stops, %d edges", health.Version, health.Stops, health.Edges),
	})

	if _, err := c.Ready(ctx); err != nil {
		results = append(results, checkResult{
			Name: "Ready", Passed: false,
			Hint: fmt.Sprintf("The network is empty or the database is down. Error: %v", err),
		})
	} else {
		results = append(results, checkResult{Name: "Ready", Passed: true})
	}

	if _, err := c.Stats(ctx); err != nil {
		results = append(results, checkResult{
			Name: "Authentication", Passed: false,
			Hint: fmt.Sprintf("Check your API key. Error: %v", err),
		})
	} else {
		results = append(results, checkResult{Name: "Authentication", Passed: true, Detail: "valid"})
	}

	return results
}

func doctorLoadConfig() (string, *configFile, error) {
	cfgPath, err := configPath()
	if err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfgPath, nil, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfgPath, nil, err
	}
	return cfgPath, &cfg, nil
}

// doctorResolveSettings applies the same precedence as resolveConfig without
// touching the global flags.
func doctorResolveSettings(cfg *configFile) (url, apiKey string) {
	url = flagURL
	apiKey = flagKey

	if url == defaultURL {
		if v := os.Getenv("TRANSITROUTE_URL"); v != "" {
			url = v
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("TRANSITROUTE_API_KEY")
	}

	if cfg != nil {
		fileURL, fileKey := cfg.resolve()
		if url == defaultURL && fileURL != "" {
			url = fileURL
		}
		if apiKey == "" && fileKey != "" {
			apiKey = fileKey
		}
	}

	return url, apiKey
}
