package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kestrelwm/kestrel/config"
	"github.com/kestrelwm/kestrel/wm"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "kestrel",
		Short: "kestrel is a reparenting-free, EWMH-compliant tiling window manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kestrel: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	manager, err := wm.New(cfg)
	if err != nil {
		return fmt.Errorf("create window manager: %w", err)
	}
	defer manager.Close()

	if err := manager.Init(); err != nil {
		return fmt.Errorf("initialize window manager: %w", err)
	}

	logrus.Info("kestrel: window manager initialized, entering event loop")
	return manager.Run()
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/kestrel/config.yaml"
}
