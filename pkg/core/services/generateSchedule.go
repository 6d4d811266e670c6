package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/internal/config"
	"github.com/jakechorley/shift-grid/pkg/core/allocator"
	"github.com/jakechorley/shift-grid/pkg/core/model"
	"github.com/jakechorley/shift-grid/pkg/db"
	"github.com/jakechorley/shift-grid/pkg/recurrence"
)

// GenerateScheduleInput holds the per-run inputs of GenerateSchedule
type GenerateScheduleInput struct {
	// Names is the roster in processing order. Duplicates are kept as separate employees.
	Names []string

	// Preferences may be nil
	Preferences model.Preferences

	// Seed overrides the configured seed. If neither is set a time based seed is used.
	Seed *uint64

	// WeekStart is the Monday the schedule covers. Zero means the next Monday.
	WeekStart time.Time

	// Publish stores the run and its assignments
	Publish bool
}

// ScheduleResult represents the result of generating a schedule
type ScheduleResult struct {
	RunID     string // only set when published
	Seed      uint64
	WeekStart time.Time
	WeekDates []time.Time
	Outcome   *allocator.AllocationOutcome
	Published bool
}

// GenerateSchedule builds the week's schedule from the roster and preferences,
// logs any shortfall and optionally publishes the result to the store
func GenerateSchedule(
	ctx context.Context,
	store db.ScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	input GenerateScheduleInput,
) (*ScheduleResult, error) {
	if len(input.Names) == 0 {
		return nil, fmt.Errorf("at least one employee name is required")
	}
	if input.Publish && store == nil {
		return nil, fmt.Errorf("publishing requires databaseURL to be set in config")
	}

	logger.Debug("Generating schedule",
		zap.Int("employee_count", len(input.Names)),
		zap.Int("min_staffing", cfg.MinStaffing),
		zap.Int("weekly_cap", cfg.WeeklyCap))

	warnInputProblems(logger, input)

	picker := allocator.NewSeededPicker(resolveSeed(input.Seed, cfg.Seed))
	logger.Info("Using seed", zap.Uint64("seed", picker.Seed()))

	weekStart := input.WeekStart
	if weekStart.IsZero() {
		weekStart = recurrence.NextMonday(time.Now())
	}
	weekDates, err := recurrence.WeekDates(weekStart)
	if err != nil {
		return nil, err
	}

	slotTargets, err := slotTargetsFromConfig(cfg.StaffingOverrides)
	if err != nil {
		return nil, err
	}

	outcome, err := allocator.Allocate(allocator.AllocationConfig{
		Names:       input.Names,
		Preferences: input.Preferences,
		MinStaffing: cfg.MinStaffing,
		WeeklyCap:   cfg.WeeklyCap,
		SlotTargets: slotTargets,
		Picker:      picker,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate schedule: %w", err)
	}

	logOutcome(logger, outcome)

	result := &ScheduleResult{
		Seed:      picker.Seed(),
		WeekStart: weekStart,
		WeekDates: weekDates,
		Outcome:   outcome,
	}

	if !input.Publish {
		return result, nil
	}

	run := &db.ScheduleRun{
		ID:          uuid.New().String(),
		WeekStart:   weekStart.Format("2006-01-02"),
		Seed:        picker.Seed(),
		MinStaffing: cfg.MinStaffing,
		WeeklyCap:   outcome.State.WeeklyCap,
		CreatedAt:   time.Now().UTC(),
	}
	if run.MinStaffing == 0 {
		run.MinStaffing = allocator.DefaultMinStaffing
	}

	logger.Debug("Publishing schedule run", zap.String("run_id", run.ID), zap.String("week_start", run.WeekStart))

	assignments := toDBAssignments(run.ID, outcome, weekDates)
	if err := store.InsertSchedule(ctx, run, assignments); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("run_id", run.ID),
		zap.Int("assignment_count", len(assignments)))

	result.RunID = run.ID
	result.Published = true
	return result, nil
}

// warnInputProblems logs input that is accepted but probably unintended
func warnInputProblems(logger *zap.Logger, input GenerateScheduleInput) {
	roster := allocator.NewRoster(input.Names)
	for _, name := range roster.DuplicateNames() {
		logger.Warn("Duplicate employee name, each occurrence is scheduled independently", zap.String("name", name))
	}

	var unknown []string
	for name := range input.Preferences {
		if len(roster.ByName(name)) == 0 {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		logger.Warn("Ignoring preferences for unknown employee", zap.String("name", name))
	}
}

// resolveSeed picks the explicit seed, then the configured one, then a time based one
func resolveSeed(explicit, configured *uint64) uint64 {
	if explicit != nil {
		return *explicit
	}
	if configured != nil {
		return *configured
	}
	return uint64(time.Now().UnixNano())
}

func logOutcome(logger *zap.Logger, outcome *allocator.AllocationOutcome) {
	counts := make(map[allocator.Phase]int)
	for _, a := range outcome.Assignments {
		counts[a.Phase]++
	}
	logger.Info("Allocation complete",
		zap.Int("preference_assignments", counts[allocator.PhasePreference]),
		zap.Int("conflict_resolution_assignments", counts[allocator.PhaseConflictResolution]),
		zap.Int("gap_fill_assignments", counts[allocator.PhaseGapFill]),
		zap.Int("understaffed_slots", len(outcome.Understaffed)))

	// shortfalls are a normal outcome, the summary above carries the count
	for _, ref := range outcome.Understaffed {
		slot := outcome.State.Grid.Slot(ref.Day, ref.Shift)
		logger.Debug("Slot below minimum staffing",
			zap.String("day", string(ref.Day)),
			zap.String("shift", string(ref.Shift)),
			zap.Int("occupancy", slot.Occupancy()),
			zap.Int("target", slot.Target))
	}

	for _, employee := range outcome.State.Roster.Employees() {
		if remaining := employee.RemainingDays(outcome.State.WeeklyCap); remaining > 0 {
			logger.Debug("Employee below weekly cap",
				zap.String("name", employee.Name),
				zap.Int("days_worked", employee.DaysWorked),
				zap.Int("remaining_days", remaining))
		}
	}

	for _, verr := range outcome.ValidationErrors {
		logger.Error("Schedule validation error",
			zap.String("criterion", verr.CriterionName),
			zap.String("day", string(verr.Slot.Day)),
			zap.String("shift", string(verr.Slot.Shift)),
			zap.String("description", verr.Description))
	}
}
