package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/commuteco2/app"
	"github.com/kilianp07/commuteco2/core/commute"
	"github.com/kilianp07/commuteco2/core/model"
	"github.com/kilianp07/commuteco2/pkg/report"
)

func newRouteCmd(f *rootFlags) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Measure the commute route for a single mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseMode(mode)
			if err != nil {
				return err
			}
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
			meas, err := svc.Measure(ctx, m)
			if err != nil {
				return err
			}
			return report.WriteMeasurement(cmd.OutOrStdout(), commute.Home, commute.Work, meas)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", model.ModeCar.String(), "commute mode: BIKE, BUS, CAR or CAR_POOL")
	return cmd
}
