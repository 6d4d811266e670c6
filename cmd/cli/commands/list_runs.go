package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-grid/pkg/core/services"
	"github.com/jakechorley/shift-grid/pkg/db"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List published schedule runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireStore("listRuns"); err != nil {
				return err
			}

			runs, err := services.ListRuns(app.Ctx, app.Store, app.Logger)
			if err != nil {
				return err
			}

			printRuns(cmd.OutOrStdout(), runs)
			return nil
		},
	}
}

func printRuns(w io.Writer, runs []db.ScheduleRun) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No published schedule runs")
		return
	}

	fmt.Fprintf(w, "%-36s  %-10s  %-20s  %-5s  %-3s  %s\n", "ID", "WEEK", "SEED", "STAFF", "CAP", "CREATED")
	for _, run := range runs {
		fmt.Fprintf(w, "%-36s  %-10s  %-20d  %-5d  %-3d  %s\n",
			run.ID,
			run.WeekStart,
			run.Seed,
			run.MinStaffing,
			run.WeeklyCap,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
}
