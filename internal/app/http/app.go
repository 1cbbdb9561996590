package httpapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type App struct {
	log        logger.Logger
	httpServer *http.Server
	port       int
}

func NewApp(log logger.Logger, handler http.Handler, port int) *App {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	return &App{
		log:        log,
		httpServer: httpServer,
		port:       port,
	}
}

func (a *App) RunWithPanic() {
	if err := a.Run(); err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("failed to run http server: %v", err))
	}
}

func (a *App) Run() error {
	const op = "httpapp.run"

	a.log.Info(op, logger.String("status", "starting http server"), logger.Int("port", a.port))

	return a.httpServer.ListenAndServe()
}

func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.stop"

	a.log.Info(op, logger.String("status", "stopping http server"))

	return a.httpServer.Shutdown(ctx)
}
