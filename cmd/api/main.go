package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backend/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-backend/internal/db"
	"github.com/BruksfildServices01/salon-backend/internal/logging"
	"github.com/BruksfildServices01/salon-backend/internal/routes"
	"github.com/BruksfildServices01/salon-backend/internal/session"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}

	// ======================================================
	// SESSIONS
	// ======================================================
	var store session.Store = session.Stateless{}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err := session.NewRedisStore(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("redis unavailable")
		}
		defer redisStore.Close()
		store = redisStore
		log.Info("token sessions stored in redis")
	}
	tokens := session.NewManager(cfg.JWTSecret, cfg.TokenTTL, store)

	// ======================================================
	// HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(db, cfg, tokens, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("server stopped")
}
