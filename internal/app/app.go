package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ibeloyar/orderqueue/internal/config"
	"github.com/ibeloyar/orderqueue/internal/model"
	"github.com/ibeloyar/orderqueue/internal/repository/bitrix"
	"github.com/ibeloyar/orderqueue/internal/service"
	"github.com/ibeloyar/orderqueue/pgk/logger"
	"github.com/ibeloyar/orderqueue/pgk/restclient"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpController "github.com/ibeloyar/orderqueue/internal/controller/http"
)

func newService(cfg config.Config, lg *zap.SugaredLogger) *service.Service {
	client := restclient.New(restclient.Config{Timeout: cfg.BitrixTimeout}, lg)
	repo := bitrix.New(cfg.BitrixURL, cfg.BitrixHeaders, client)

	return service.New(repo, lg)
}

func newRouter(cfg config.Config, s httpController.Service, lg *zap.SugaredLogger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	handlers := httpController.New(s, lg)

	return httpController.InitRoutes(router, handlers)
}

// Run - поднимает HTTP сервер с GET /orders и ждет SIGINT/SIGTERM
func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: newRouter(cfg, newService(cfg, lg), lg),
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		lg.Infof("starting server on %s", cfg.RunAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server ListenAndServe error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		lg.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown (server) error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	lg.Info("server shutdown success")
	return nil
}

// RunOnce - один расчет по cfg.OrderID с выводом текстовой сводки в лог.
// Ненайденный заказ только логируется и ошибкой не считается.
func RunOnce(ctx context.Context, cfg config.Config, lg *zap.SugaredLogger) error {
	result, err := newService(cfg, lg).Aggregate(ctx, model.AggregateParams{
		OrderID:   cfg.OrderID,
		FromDate:  cfg.FromDate,
		UntilDate: cfg.UntilDate,
	})
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil
		}
		return err
	}

	lg.Info(result.Summary())
	return nil
}
