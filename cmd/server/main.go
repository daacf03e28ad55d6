package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/pawmart/pawmart-server/pkg/db"
	"github.com/pawmart/pawmart-server/pkg/logging"
	loggingmw "github.com/pawmart/pawmart-server/pkg/middleware/logging"

	"github.com/pawmart/pawmart-server/internal/config"
	"github.com/pawmart/pawmart-server/internal/events"
	"github.com/pawmart/pawmart-server/internal/httpserver"
	"github.com/pawmart/pawmart-server/internal/repo"
	"github.com/pawmart/pawmart-server/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers)
	}

	mongoRepo := &repo.MongoRepo{DB: client.Database(cfg.DatabaseName)}
	listingSvc := &service.ListingService{Repo: mongoRepo, Events: producer}
	orderSvc := &service.OrderService{Repo: mongoRepo, Events: producer}
	userSvc := &service.UserService{Repo: mongoRepo}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
		}))
	} else {
		e.Use(echomw.CORS())
	}

	httpserver.Register(e, &httpserver.Deps{
		ListingHandler: &httpserver.ListingHTTP{Svc: listingSvc, Dev: cfg.Development()},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc, Dev: cfg.Development()},
		UserHandler:    &httpserver.UserHTTP{Svc: userSvc, Dev: cfg.Development()},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("pawmart listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if producer != nil {
		_ = producer.Close()
	}
	_ = client.Disconnect(shutdownCtx)

	log.Println("pawmart stopped")
}
