package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	apimiddleware "harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/router"
	"harvest/internal/delivery/api/validator"
	"harvest/internal/delivery/middleware"
	"harvest/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	hostPort    string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the marketplace API on echo with h2c support.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	// /api/v1/farms/ and /api/v1/farms hit the same route
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// Order matters: the request id must exist before the access log reads it.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestScopeMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowHeaders: []string{
				echo.HeaderOrigin,
				echo.HeaderContentType,
				echo.HeaderAccept,
				echo.HeaderAuthorization,
				apimiddleware.HeaderIdempotencyKey,
			},
			ExposeHeaders: []string{apimiddleware.HeaderIdempotentReplayed, echo.HeaderXRequestID, echo.HeaderContentDisposition},
		}),
		echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize),
		// Farm order exports are the only large responses.
		echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{MinLength: 1024}),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		hostPort:    net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		idleTimeout: httpCfg.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("Marketplace API listening", slog.String("host_port", s.hostPort))

	err := s.echo.StartH2CServer(s.hostPort, &http2.Server{IdleTimeout: s.idleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
