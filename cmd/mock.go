package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/commuteco2/infra/directions"
)

func newMockCmd(f *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "mock-directions",
		Short: "Serve a fake Directions API for demos and tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			mockCfg := cfg.Directions.Mock
			if addr != "" {
				mockCfg.Address = addr
			}
			return directions.NewServerMock(mockCfg).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides directions.mock.address")
	return cmd
}
