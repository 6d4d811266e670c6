package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/pkg/core/services"
	"github.com/jakechorley/shift-grid/pkg/render"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "viewSchedule [run_id]",
		Short: "Show a published schedule (default: the latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStore("viewSchedule"); err != nil {
				return err
			}

			outputFormat, err := render.ParseFormat(resolveFormat(format, app.Cfg.Output))
			if err != nil {
				return err
			}

			var runID string
			if len(args) == 1 {
				runID = args[0]
			}

			app.Logger.Debug("viewSchedule command", zap.String("run_id", runID))

			result, err := services.ViewSchedule(app.Ctx, app.Store, app.Logger, runID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (seed %d)\n\n", result.Run.ID, result.Run.Seed)
			return render.Schedule(out, outputFormat, result.Grid, result.WeekDates)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: plain or table (default from config)")

	return cmd
}
