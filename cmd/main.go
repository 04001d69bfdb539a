package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/MuriloBarros304/web-menu/internal/adapter/http"
	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/adapter/postgres"
	"github.com/MuriloBarros304/web-menu/internal/app/menu"
	"github.com/MuriloBarros304/web-menu/internal/app/order"
	"github.com/MuriloBarros304/web-menu/internal/app/table"
	"github.com/MuriloBarros304/web-menu/internal/app/user"
	"github.com/MuriloBarros304/web-menu/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	port := flag.Int("port", 0, "HTTP port (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	lgr := logger.New("web-menu")
	ctx := context.Background()

	pool, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]any{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply database schema: %v", err)
	}
	lgr.Info("schema_applied", "Database schema up to date", "startup", nil)

	// Repositories
	orderRepo := postgres.NewOrderRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	// Services
	orderService := order.NewService(orderRepo, dishRepo, tableRepo, lgr)
	menuService := menu.NewService(dishRepo, lgr)
	tableService := table.NewService(tableRepo, lgr)
	userService := user.NewService(userRepo, sessionRepo, lgr)

	handler := httpAdapter.NewRouter(orderService, menuService, tableService, userService, sessionRepo, lgr)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Restaurant API started on port %d", cfg.Server.Port), "startup", map[string]any{
		"port": cfg.Server.Port,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
