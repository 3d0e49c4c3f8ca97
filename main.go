package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"personavix_backend/internals/configs"
	database "personavix_backend/internals/databases"
	helper "personavix_backend/internals/helpers"
	middlewares "personavix_backend/internals/middlewares"
	routes "personavix_backend/internals/route"
	"personavix_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	log, closer, err := configs.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, log, os.Args[1:]); err != nil {
		log.Error("exit", "error", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *configs.Config, log *slog.Logger, args []string) error {
	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close db", "error", err)
		}
	}()
	if err := database.TunePool(db); err != nil {
		return fmt.Errorf("tune pool: %w", err)
	}

	if cfg.DBAutoMigrate || (len(args) > 0 && args[0] == "migrate") {
		if err := database.AutoMigrate(db, log); err != nil {
			return err
		}
	}

	// subcommands: migrate | seed
	if len(args) > 0 {
		switch args[0] {
		case "migrate":
			log.Info("migration finished")
			return nil
		case "seed":
			if err := seeds.RunAllSeeds(db, cfg, log); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			log.Info("seed finished")
			return nil
		default:
			return fmt.Errorf("unknown command %q (expected migrate or seed)", args[0])
		}
	}

	rdb, err := database.InitRedis(cfg, log)
	if err != nil {
		// limiter falls back to in-memory storage
		log.Warn("redis unavailable", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	database.WarmUpQueries(db, log)

	app := newApp(cfg, log)

	middlewares.SetupMiddlewares(app, cfg, log)
	routes.SetupRoutes(app, db, routes.Options{
		Config: cfg,
		Log:    log,
		Redis:  rdb,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("✅ Listening", "port", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newApp builds the fiber app. X-Forwarded-For is only read from the proxies
// listed in TRUSTED_PROXIES; without any, c.IP() is the socket peer.
func newApp(cfg *configs.Config, log *slog.Logger) *fiber.App {
	fc := fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler(log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	}
	if len(cfg.TrustedProxies) > 0 {
		fc.ProxyHeader = fiber.HeaderXForwardedFor
		fc.EnableTrustedProxyCheck = true
		fc.TrustedProxies = cfg.TrustedProxies
	}
	return fiber.New(fc)
}
