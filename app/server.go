package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/teatak/glossary/config"
	"github.com/teatak/glossary/server"
)

// RunServer loads the glossary and serves the HTTP API until ctx is
// cancelled, then shuts down within cfg.Server.ShutdownTimeout.
func RunServer(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Info("starting glossary server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	seg, err := NewSegmenter(cfg.Segmenter, log)
	if err != nil {
		return fmt.Errorf("app: segmenter: %w", err)
	}
	ix, err := LoadIndex(cfg.Glossary, seg, log)
	if err != nil {
		return fmt.Errorf("app: glossary: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.New(ix, seg, BuildVersion(), log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
