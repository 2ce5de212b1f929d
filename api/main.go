package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/inventory-cli/internal/auth"
	"github.com/rogerio-castellano/inventory-cli/internal/config"
	"github.com/rogerio-castellano/inventory-cli/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-cli/internal/http/middleware"
	"github.com/rogerio-castellano/inventory-cli/internal/http/router"
	"github.com/rogerio-castellano/inventory-cli/internal/logger"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// @title Inventory API
// @version 1.0
// @description REST API over the file-backed product inventory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configFile := pflag.StringP("config", "c", "", "path to a YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load configuration:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.Log.Level)

	products := repo.NewFileProductRepository(cfg.Store.File,
		repo.WithCapacity(cfg.Store.Capacity),
		repo.WithMaxNameLength(cfg.Store.MaxNameLength),
		repo.WithLogger(log),
	)
	if err := products.Load(); err != nil {
		log.Error("could not load inventory", "path", cfg.Store.File, "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	limiter := mw.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst)
	server := handlers.NewServer(products, tokens, log, cfg.Store.MaxNameLength)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router.NewRouter(server, tokens, limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		limiter.CleanupLoop(gCtx, time.Minute, 5*time.Minute)
		return nil
	})
	g.Go(func() error {
		log.Info("server running", "addr", cfg.HTTP.Addr, "inventory", cfg.Store.File)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
