package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/cli/config"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/types"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/utils/logbus"
)

// recentLogLines is how much history the live log view replays on connect.
const recentLogLines = 50

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger

	hub := logbus.New(recentLogLines)

	app := &cli.Command{
		Name:    "pptx-parser",
		Usage:   "Extract picture descriptions from PowerPoint slides",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure(hub)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(hub),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
