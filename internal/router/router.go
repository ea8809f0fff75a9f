package router

import (
	"database/sql"
	"net/http"
	"os"

	"child-growth-tracker/internal/adapters/kvstore"
	mem "child-growth-tracker/internal/adapters/storage/memory"
	"child-growth-tracker/internal/adapters/storage/localstore"
	pg "child-growth-tracker/internal/adapters/storage/postgres"
	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
	"child-growth-tracker/internal/middleware"
	"child-growth-tracker/internal/platform/logger"
	"child-growth-tracker/internal/ports/auth"
	"child-growth-tracker/internal/ports/kv"
	"child-growth-tracker/internal/ports/upstream"
	syncsvc "child-growth-tracker/internal/sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "child-growth-tracker/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil enables dev mode (X-Debug-User-ID)

	// Upstream enables remote-first mode: operations go to the remote growth
	// backend and fall back to the local snapshot. Takes precedence over DB.
	Upstream upstream.GrowthAPI

	// KV backs the local snapshot in upstream mode; nil keeps it in memory.
	KV kv.Store

	// DB enables Postgres storage. Nil without Upstream means in-memory.
	DB *sql.DB

	// BasePath prefixes every API route, e.g. "/api/v1". Health and swagger
	// stay at the root.
	BasePath string

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	var (
		childrenProvider children.Provider
		growthProvider   growth.Provider
		childSource      growth.ChildSource
	)

	if opts.Upstream != nil {
		store := localstore.New(snapshotKV(opts.KV))
		svc := syncsvc.New(opts.Upstream, store, log)
		childrenProvider = svc
		growthProvider = svc
		childSource = svc
	} else {
		var (
			childRepo  children.Repository
			recordRepo growth.Repository
		)

		// No explicit DB: try env so dev handoff keeps working.
		db := opts.DB
		if db == nil {
			if dsn := os.Getenv("DB_DSN"); dsn != "" {
				opened, err := pg.Open(dsn)
				if err == nil {
					db = opened
				}
			}
		}

		if db != nil {
			childRepo = pg.NewChildrenRepo(db)
			recordRepo = pg.NewGrowthRepo(db)
		} else {
			childRepo = mem.NewChildrenRepo()
			recordRepo = mem.NewGrowthRepo()
		}

		childrenSvc := children.NewService(childRepo)
		growthSvc := growth.NewService(recordRepo, childrenSvc)
		childrenProvider = childrenSvc
		growthProvider = growthSvc
		childSource = childrenSvc
	}

	register := func(api chi.Router) {
		children.RegisterRoutes(api, childrenProvider)
		growth.RegisterRoutes(api, growthProvider, childSource)
	}

	if opts.BasePath == "" {
		register(r)
	} else {
		r.Route(opts.BasePath, register)
	}

	return r
}

func snapshotKV(store kv.Store) kv.Store {
	if store != nil {
		return store
	}
	return kvstore.NewMemory()
}
