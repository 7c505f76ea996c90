// Package api provides the HTTP API for the application
package api

import (
	"context"

	"estoque/internal/platform/config"
	"estoque/internal/platform/logger"
	phttp "estoque/internal/platform/net/http"
	"estoque/internal/platform/store"

	"estoque/internal/modkit"
	"estoque/internal/modkit/httpkit"
	"estoque/internal/modkit/module"
	"estoque/internal/modkit/repokit"

	metamod "estoque/internal/services/api/meta/module"
	movmod "estoque/internal/services/api/movimentos/module"
	prevmod "estoque/internal/services/api/previsao/module"
	unimod "estoque/internal/services/api/unidades/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// every API transaction runs with a local statement timeout
	pg := repokit.WithBeginHooks(opt.Store.PG, func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, "set local statement_timeout = '5s'")
		return err
	})

	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  pg,
	}

	mods := []module.Module{
		metamod.New(deps),
		unimod.New(deps),
		movmod.New(deps),
		prevmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
