package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gryffintwin/config"
	"github.com/oksasatya/gryffintwin/internal/container"
	"github.com/oksasatya/gryffintwin/internal/infrastructure/memory"
	"github.com/oksasatya/gryffintwin/internal/infrastructure/redisstore"
	"github.com/oksasatya/gryffintwin/internal/router"
	"github.com/oksasatya/gryffintwin/internal/session"
	"github.com/oksasatya/gryffintwin/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, rdb, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to init session store: %v", err)
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}
	if !cfg.CookieSecure {
		logger.Warn("session cookie is not secure-flagged; set COOKIE_SECURE=true behind HTTPS")
	}

	sessions := session.NewManager(
		store,
		helpers.NewSessionSigner(cfg.SessionSecret),
		helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		cfg.SessionCookieName,
		cfg.SessionTTL,
	)
	ctr := container.New(cfg, logger, memory.NewDemoUserRepository(), memory.NewFinanceRepository(), sessions)

	r, err := router.NewEngine(ctr)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server running at http://localhost:%s", cfg.Port)
		logger.Info("demo login: user@example.com / password123")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func newSessionStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (session.Store, *redis.Client, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}
		logger.WithField("addr", cfg.RedisAddr).Info("using redis session store")
		return redisstore.NewSessionStore(rdb), rdb, nil
	default:
		if cfg.SessionStore != config.SessionStoreMemory {
			logger.WithField("store", cfg.SessionStore).Warn("unknown session store, falling back to memory")
		}
		logger.WithField("sweep", cfg.SessionSweep).Info("using in-memory session store")
		store := memory.NewSessionStore()
		go store.StartJanitor(ctx, cfg.SessionSweep)
		return store, nil, nil
	}
}
