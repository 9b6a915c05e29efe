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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/asiedu/ecommerce-cart/internal/config"
	"github.com/asiedu/ecommerce-cart/internal/es"
	"github.com/asiedu/ecommerce-cart/internal/httpserver"
	"github.com/asiedu/ecommerce-cart/internal/logging"
	"github.com/asiedu/ecommerce-cart/internal/mykafka"
	"github.com/asiedu/ecommerce-cart/internal/repo"
	"github.com/asiedu/ecommerce-cart/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)

	gormRepo := repo.New(db)

	deps := &httpserver.Deps{
		CartHandler: &httpserver.CartHandler{
			Svc:      &service.CartService{Repo: gormRepo},
			Producer: producer,
		},
		UserHandler: &httpserver.UserHandler{
			Svc: &service.UserService{Repo: gormRepo},
		},
		ProductHandler: &httpserver.ProductHandler{
			Svc:      &service.ProductService{Repo: gormRepo},
			Producer: producer,
		},
		Logger: logger,
	}

	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("es init error: %v", err)
		}
		deps.SearchHandler = &httpserver.SearchHandler{ES: esClient, Index: "products"}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	httpserver.Register(e, deps)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		logger.Info("starting cart service", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
