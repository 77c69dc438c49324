package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/config"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/handler"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/inject"
	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := log.New(os.Stderr)
	ctx := log.NewContext(context.Background(), logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	injector := inject.Setup(ctx, cfg)
	router := do.MustInvoke[*handler.Router](injector)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return errors.Join(srv.Shutdown(context.Background()), injector.Shutdown())
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
