package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"recordkeeper/internal/platform/config"
	"recordkeeper/internal/platform/logger"
	phttp "recordkeeper/internal/platform/net/http"
	"recordkeeper/internal/platform/store"

	"recordkeeper/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("API_")
	pgCfg := root.Prefix("PG_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			PG: store.PGConfig{
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 10)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config: root,
		Store:  st,
		Logger: l,
	})

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
		<-errc
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	}
}
