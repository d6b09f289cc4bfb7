// Command harmony serves the legal harmonization review dashboard and its
// JSON API, and exposes the case list and translation catalog on the command
// line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries the configuration loaded before any subcommand runs.
type app struct {
	configFile string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "harmony",
		Short:         "Legal harmonization review dashboard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(a.configFile)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", config.BaseConfigFile, "base config file")

	root.AddCommand(
		newServeCmd(a),
		newCasesCmd(a),
		newTranslateCmd(a),
		newVersionCmd(a),
	)

	return root
}
