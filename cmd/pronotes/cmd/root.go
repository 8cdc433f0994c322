// cmd/pronotes/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"pronotes/cmd/pronotes/cmd/types"
	"pronotes/internal/app"
	"pronotes/internal/config"
	"pronotes/internal/utils/logger"
)

var (
	cfg         *config.Config
	log         *slog.Logger
	application *app.App
	configPath  string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "pronotes",
	Short: "ProNotes - private notes for every account on this device",
	Long: `ProNotes keeps private rich-text notes for any number of local
accounts. Everything is stored on-device; there is no server and no sync.

Log in with a password or the device biometric, then create, edit and
delete notes scoped to the active account.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad(configPath)

	if debug {
		cfg.Env = config.EnvLocal
		cfg.LogLevel = "debug"
	}

	log = logger.New(cfg.Env, cfg.LogLevel)

	var err error
	application, err = app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.AppKey, application))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an env-format config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}
