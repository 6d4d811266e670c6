package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/pkg/core/model"
	"github.com/jakechorley/shift-grid/pkg/core/services"
	"github.com/jakechorley/shift-grid/pkg/preferences"
	"github.com/jakechorley/shift-grid/pkg/recurrence"
	"github.com/jakechorley/shift-grid/pkg/render"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	var (
		employees       []string
		preferencesPath string
		interactive     bool
		seed            uint64
		weekStart       string
		format          string
		publish         bool
	)

	cmd := &cobra.Command{
		Use:   "generate [name...]",
		Short: "Generate a weekly shift schedule for the given employees",
		Long: `Generate a weekly schedule of morning, afternoon and evening shifts.

Employees are given with --employees (repeat the flag for each name) and/or as
positional arguments. Names are taken verbatim, commas included. Preferred shifts can be loaded from a YAML file with
--preferences, entered interactively with --interactive, or both (interactive
answers override the file).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := collectNames(employees, args)
			if len(names) == 0 {
				return fmt.Errorf("at least one employee is required (use --employees or positional names)")
			}

			outputFormat, err := render.ParseFormat(resolveFormat(format, app.Cfg.Output))
			if err != nil {
				return err
			}

			input := services.GenerateScheduleInput{
				Names:   names,
				Publish: publish,
			}

			if cmd.Flags().Changed("seed") {
				input.Seed = &seed
			}

			if weekStart != "" {
				input.WeekStart, err = recurrence.ParseWeekStart(weekStart)
				if err != nil {
					return err
				}
			}

			input.Preferences, err = gatherPreferences(app, preferencesPath, interactive, names, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app.Logger.Debug("generate command",
				zap.Strings("names", names),
				zap.Bool("interactive", interactive),
				zap.Bool("publish", publish))

			result, err := services.GenerateSchedule(app.Ctx, app.Store, app.Cfg, app.Logger, input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := render.Schedule(out, outputFormat, result.Outcome.State.Grid, result.WeekDates); err != nil {
				return fmt.Errorf("failed to render schedule: %w", err)
			}

			printSummary(out, result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&employees, "employees", nil, "Employee name (repeat for each employee, commas are kept)")
	cmd.Flags().StringVar(&preferencesPath, "preferences", "", "Path to a YAML preferences file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Enter preferences interactively")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for gap filling (overrides config, default time based)")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "Monday the schedule starts on, YYYY-MM-DD (default next Monday)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: plain or table (default from config)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Store the schedule in the database")

	return cmd
}

// collectNames merges flag and positional names in order, dropping blanks
func collectNames(flagNames, args []string) []string {
	var names []string
	for _, name := range append(append([]string{}, flagNames...), args...) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// resolveFormat prefers the flag, then the config, then plain
func resolveFormat(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return string(render.FormatPlain)
}

// gatherPreferences loads the preferences file, then runs the prompt if asked.
// Prompt answers replace file entries for the same employee and day.
func gatherPreferences(app *AppContext, path string, interactive bool, names []string, promptOut io.Writer) (model.Preferences, error) {
	prefs := model.Preferences{}

	if path != "" {
		loaded, err := preferences.LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		mergePreferences(prefs, loaded)
		app.Logger.Info("Loaded preferences", zap.String("path", path), zap.Int("employees", len(loaded)))
	}

	if interactive {
		answered, err := preferences.Prompt(uniqueNames(names), app.input(), promptOut)
		if err != nil {
			return nil, err
		}
		mergePreferences(prefs, answered)
	}

	return prefs, nil
}

func mergePreferences(dst, src model.Preferences) {
	for name, days := range src {
		for day, shift := range days {
			dst.Set(name, day, shift)
		}
	}
}

// uniqueNames drops repeated names so the prompt asks about each name once
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

func printSummary(w io.Writer, result *services.ScheduleResult) {
	fmt.Fprintf(w, "Seed: %d\n", result.Seed)
	if n := len(result.Outcome.Understaffed); n > 0 {
		fmt.Fprintf(w, "Understaffed slots: %d\n", n)
	}
	if result.Published {
		fmt.Fprintf(w, "Published run: %s\n", result.RunID)
	}
}
