package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evcs/app"
	"github.com/kilianp07/evcs/config"
	"github.com/kilianp07/evcs/infra/logger"
	"github.com/kilianp07/evcs/shell"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "evcs",
	Short:        "EV charging station finder",
	Long:         "Find, book and review electric vehicle charging stations from an interactive menu.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json), defaults and environment only when empty")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	sh := shell.New(svc.Catalog, svc.Users, svc.Bookings, cmd.InOrStdin(), cmd.OutOrStdout(), svc.Log,
		shell.WithMonitor(svc.Monitor))
	done := make(chan error, 1)
	go func() {
		defer svc.Monitor.Recover()
		done <- sh.Run(ctx)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// the shell may be blocked on a read that never returns
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nInterrupted. Goodbye!")
		return nil
	}
}
