package main

import (
	"context"
	"log/slog"
	"os"

	"reservas-web/cmd/bootstrap"
	"reservas-web/internal/page"

	"go.uber.org/fx"
)

// runPage serves the page on stdin/stdout and stops the app when the user
// leaves it.
func runPage(lc fx.Lifecycle, shutdowner fx.Shutdowner, p *page.Page, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := p.Run(os.Stdin); err != nil {
					logger.Error("Page stopped", "error", err)
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("Failed to shut down", "error", err)
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Invoke(
			runPage,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Failed to stop application", "error", err)
	}
}
