package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timeservice/internal/common/enum"
	"timeservice/internal/handler/gateway"
	"timeservice/internal/pkg/config"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/pkg/middleware"
	"timeservice/internal/pkg/server"
	"timeservice/internal/pkg/validation"
	"timeservice/internal/service/upstream"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New("api1")

	if cfg.Env == enum.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.Setup(); err != nil {
		log.Error.Println("Error setting up validation")
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.RequestInit())
	r.Use(middleware.HTTPLog(log))

	handler := gateway.NewHandler(upstream.NewService(cfg, log), log)
	handler.NewRoutes(r)

	srv := server.New("api1", cfg.GatewayPort, r, log)
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
