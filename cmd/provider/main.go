package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timeservice/internal/common/enum"
	"timeservice/internal/handler/provider"
	"timeservice/internal/pkg/config"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/pkg/middleware"
	"timeservice/internal/pkg/server"
	"timeservice/internal/service/clock"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New("api2")

	if cfg.Env == enum.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}

	clockSvc, err := clock.NewService(log)
	if err != nil {
		log.Error.Println("Error loading timezones")
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.RequestInit())
	r.Use(middleware.HTTPLog(log))

	handler := provider.NewHandler(clockSvc, log)
	handler.NewRoutes(r)

	srv := server.New("api2", cfg.ProviderPort, r, log)
	errs := make(chan error, 1)
	srv.Start(errs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		log.Error.Println(err)
	case <-sigChan:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error.Println(err)
	}
}
