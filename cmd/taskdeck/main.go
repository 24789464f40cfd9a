// Package main implements the taskdeck CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gf-haseeb/taskdeck/internal/config"
	"github.com/gf-haseeb/taskdeck/storage"
	"github.com/gf-haseeb/taskdeck/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "taskdeck",
	Short:         "Taskdeck - manage ordered lists of tasks",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var rootVerbose bool

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "taskdeck",
})

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose logging")
	cobra.OnInitialize(func() {
		if rootVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	})
}

// openManager loads configuration and opens the task document.
func openManager() (*task.Manager, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working dir: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	path, err := cfg.DocumentPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("opening task document", "path", path)

	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	gateway, err := storage.NewJSON(path)
	if err != nil {
		return nil, err
	}

	manager, err := task.NewManager(gateway)
	if err != nil {
		return nil, err
	}

	// A configured default strategy only applies to brand-new documents.
	if fresh && cfg.Lists.DefaultStrategy != "" {
		strategy, err := task.NormalizeStrategy(task.Strategy(cfg.Lists.DefaultStrategy))
		if err != nil {
			return nil, fmt.Errorf("config default-strategy: %w", err)
		}
		if strategy != manager.Strategy() {
			if err := manager.SetStrategy(strategy); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("document loaded", "lists", len(manager.Lists()), "strategy", manager.Strategy())
	return manager, nil
}
