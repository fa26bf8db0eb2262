package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/jonboulle/clockwork"

	"coffee-fleet-backend/config"
	"coffee-fleet-backend/internal/api"
	"coffee-fleet-backend/internal/brewsim"
	"coffee-fleet-backend/internal/notification"
	"coffee-fleet-backend/internal/seed"
	"coffee-fleet-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "coffee-fleet ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The whole data layer lives in memory for the process lifetime; the
	// clock is injected so the store and simulator share one time source.
	clock := clockwork.NewRealClock()
	appStore := store.NewMemStore(clock)
	logger.Println("in-memory data store initialized")

	if cfg.Seed.Enabled {
		seed.Populate(appStore, clock.Now())
		logger.Println("sample fleet data seeded")
	}

	// Push notifications are optional: without VAPID keys the simulator
	// runs with no notifier and everything else works as usual.
	var webpushOptions *webpush.Options
	var notifier brewsim.Notifier
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, webpushOptions)
		workerPool.Start(ctx)
		notifier = workerPool
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys not configured; push notifications disabled")
	}

	simulator := brewsim.New(clock, appStore, cfg.Brew.StartDelay, cfg.Brew.CompleteDelay, notifier)

	// Initialize router
	router := api.NewRouter(appStore, simulator, cfg, webpushOptions)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for. Any brew timers still pending are
	// discarded with the in-memory state.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
