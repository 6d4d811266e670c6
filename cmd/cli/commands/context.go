package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/internal/config"
	"github.com/jakechorley/shift-grid/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg *config.Config

	// Store is nil when no databaseURL is configured
	Store db.ScheduleStore

	Logger *zap.Logger
	Ctx    context.Context

	// In is read by the interactive preference prompt
	In io.Reader
}

func (app *AppContext) input() io.Reader {
	if app.In == nil {
		return os.Stdin
	}
	return app.In
}

func (app *AppContext) requireStore(command string) error {
	if app.Store == nil {
		return fmt.Errorf("%s requires databaseURL to be set in config", command)
	}
	return nil
}
