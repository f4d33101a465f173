// Package api provides the HTTP API for the application
package api

import (
	"time"

	"github.com/go-chi/cors"

	"recordkeeper/internal/modkit"
	"recordkeeper/internal/modkit/module"
	"recordkeeper/internal/platform/config"
	"recordkeeper/internal/platform/logger"
	phttp "recordkeeper/internal/platform/net/http"
	pmw "recordkeeper/internal/platform/net/middleware"
	"recordkeeper/internal/platform/store"

	recordsmod "recordkeeper/internal/services/api/records/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	r.Use(
		pmw.RequestID,
		pmw.RecoverJSON,
		pmw.AccessLogZerolog(pmw.AccessLogOptions{Slow: 2 * time.Second}),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}),
	)

	mods := []module.Module{
		recordsmod.New(deps),
	}
	for _, m := range mods {
		m.MountRoutes(r)
	}
}
