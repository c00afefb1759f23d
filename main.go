package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Davidson1997/bridge-calculator/internal/config"
	"github.com/Davidson1997/bridge-calculator/internal/logging"
	"github.com/Davidson1997/bridge-calculator/internal/web"
)

var wg sync.WaitGroup

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	router := mux.NewRouter()
	web.Register(router, log, cfg)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: web.CORS(router),
	}

	log.Info("starting server", zap.String("addr", cfg.Addr))
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")

	wg.Wait()
}
