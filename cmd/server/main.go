// Command alecviz serves point-in-time graphs of ALEC alarms, inventory and
// situations over HTTP, and renders or imports datasets from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alecviz/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "alecviz",
	Short:         "Point-in-time graphs of alarms, inventory and situations",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: $ALECVIZ_CONFIG, ./alecviz.yaml, then user and system config dirs)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the --config file or searches the default locations
func loadConfig() (*config.Config, string, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}
