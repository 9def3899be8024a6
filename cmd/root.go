package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/commuteco2/app"
	"github.com/kilianp07/commuteco2/config"
	"github.com/kilianp07/commuteco2/infra/logger"
)

type rootFlags struct {
	cfgPath  string
	envFile  string
	provider string
	format   string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "commuteco2",
		Short:         "Compare the CO2 footprint of commute modes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	cmd.PersistentFlags().StringVarP(&f.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	cmd.PersistentFlags().StringVar(&f.envFile, "env-file", config.DefaultEnvFile, "dotenv file holding "+config.APIKeyEnv)
	cmd.PersistentFlags().StringVar(&f.provider, "provider", "", "route provider: directions or constant")
	cmd.Flags().StringVar(&f.format, "format", "", "report format: summary, raw, json or csv")

	cmd.AddCommand(newRouteCmd(f), newMockCmd(f))
	return cmd
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configuration and applies the command line overrides.
func loadConfig(f *rootFlags) (*config.Config, error) {
	cfg, err := config.Read(f.cfgPath, f.envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f.provider != "" {
		cfg.Route.Provider = f.provider
	}
	if f.format != "" {
		cfg.Report.Format = f.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, f *rootFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	return svc.Run(ctx, cmd.OutOrStdout())
}
