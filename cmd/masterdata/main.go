package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"semaphore/masterdata/internal/config"
	"semaphore/masterdata/internal/logging"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	configPath string
	envFile    string
	cfg        config.Config
	log        zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "masterdata",
		Short:        "School master data service (guru, kelas, mata pelajaran, student)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file overriding environment variables")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newServeCmd(a), newMigrateCmd(a), newVersionCmd())
	return root
}

func (a *app) load() error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}
	cfg := config.Load()
	if a.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(a.configPath, cfg); err != nil {
			return fmt.Errorf("load config %s: %w", a.configPath, err)
		}
	}
	a.cfg = cfg
	a.log = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
