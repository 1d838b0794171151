package cli

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/cli/config"
	controller "github.com/andreas-buehlmeier/pptx-parser/pkg/controller/http"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/repository/memory"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/usecase"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/utils/async"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/utils/logbus"
)

func cmdServe(hub *logbus.Hub) *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the upload web server",
		Flags:   serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// Create use case and result store
			extractUC := usecase.NewExtract()
			store := memory.New()

			server, err := controller.NewServer(
				ctx,
				extractUC,
				store,
				controller.WithAddr(serverCfg.Addr),
				controller.WithHub(hub),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Bind the listener here rather than in ListenAndServe so that
			// port 0 works and the resolved address is known before the
			// browser opens.
			ln, err := net.Listen("tcp", serverCfg.Addr)
			if err != nil {
				return goerr.Wrap(err, "failed to listen", goerr.V("addr", serverCfg.Addr))
			}

			url := "http://" + ln.Addr().String()
			logger.Info("HTTP server is now running", slog.String("url", url))

			go func() {
				if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			if serverCfg.Open {
				async.Dispatch(ctx, func(ctx context.Context) error {
					return openBrowser(ctx, url)
				})
			}

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// openBrowser launches the platform's default browser for url.
func openBrowser(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "opening browser", goerr.V("url", url))
	}
	return nil
}
