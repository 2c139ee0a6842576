// Package worker hosts the notifier: it receives domain events pushed by
// Pub/Sub and forwards them to consumers' and farmers' devices.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/middleware"
	"harvest/internal/delivery/worker/handler"
	"harvest/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Push envelopes carry one base64 encoded event.
const pushBodyLimit = "64KB"

type notifierServer struct {
	hostPort string
	logger   *slog.Logger
	echo     *echo.Echo
}

// ServerParams holds dependencies for the notifier server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the notifier HTTP server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	port := params.Cfg.HTTP.Port
	if params.Cfg.Worker != nil && params.Cfg.Worker.Port != 0 {
		port = params.Cfg.Worker.Port
	}

	srv := &notifierServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		logger:   params.Logger,
		echo:     newRouter(params.Logger, params.Cfg, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newRouter(logger *slog.Logger, cfg *config.Config, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestScopeMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(pushBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", push.HandlePush)

	return e
}

// Serve blocks until the server is shut down.
func (s *notifierServer) Serve(_ context.Context) error {
	s.logger.Info("Notifier listening", slog.String("hostPort", s.hostPort))
	if err := s.echo.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *notifierServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
