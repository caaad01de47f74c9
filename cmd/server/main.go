package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/course-catalog/internal/config" // Internal config loader
	"github.com/iliyamo/course-catalog/internal/database"
	"github.com/iliyamo/course-catalog/internal/handler"
	"github.com/iliyamo/course-catalog/internal/queue"
	"github.com/iliyamo/course-catalog/internal/router" // Internal router setup
	"github.com/iliyamo/course-catalog/internal/store"
)

func main() {
	cfg := config.Load() // Load environment config

	st, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	// Redis is optional: a nil client disables response caching.
	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}

	if cfg.QueueEnabled {
		go func() {
			if err := queue.StartCatalogConsumer(); err != nil {
				log.Printf("catalog consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover()) // panics surface as 500 through the envelope error handler

	a := handler.NewAuthHandler(cfg, st)
	ch := handler.NewCourseHandler(st, rdb, cacheCfg.Prefix, cfg.QueueEnabled)
	p := handler.NewProfileHandler(st)
	router.Register(e, cfg, cacheCfg, rdb, a, ch, p)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}

// buildStore selects the backing store from config. Memory is the default;
// mysql connects, ensures the schema and seeds the default users when the
// table is empty.
func buildStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreDriver == "mysql" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, err
		}
		ctx := context.Background()
		if err := database.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		s := store.NewMySQLStore(db)
		if err := s.SeedUsers(ctx, store.DefaultSeedUsers(), cfg.BcryptCost); err != nil {
			return nil, err
		}
		return s, nil
	}
	return store.NewMemoryStore(store.DefaultSeedUsers(), store.DefaultSeedCourses(), cfg.BcryptCost)
}
