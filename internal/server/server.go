package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/validator"
)

const shutdownTimeout = 10 * time.Second

// New は共通のミドルウェアとエラー処理を組んだechoを返す
func New(cfg config.Config, log logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(log)

	e.Server.ReadTimeout = cfg.HTTPReadTimeout
	e.Server.WriteTimeout = cfg.HTTPWriteTimeout

	//外側から順に実行
	e.Use(middleware.Chain(
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}),
		middleware.RequestLogger(log),
		metrics.Middleware(),
		echomw.RecoverWithConfig(echomw.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.WithError(err).WithField("stack", string(stack)).Error("panic recovered")
				return err
			},
		}),
	))

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	return e
}

// Start はctxが終わるまで待ち受けてからshutdownする
func Start(ctx context.Context, e *echo.Echo, addr string, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("server started")
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
