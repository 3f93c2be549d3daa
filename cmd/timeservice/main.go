package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timeservice/internal/common/enum"
	"timeservice/internal/handler/gateway"
	"timeservice/internal/handler/provider"
	"timeservice/internal/pkg/config"
	"timeservice/internal/pkg/logger"
	"timeservice/internal/pkg/middleware"
	"timeservice/internal/pkg/server"
	"timeservice/internal/pkg/validation"
	"timeservice/internal/service/clock"
	"timeservice/internal/service/upstream"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Runs both services in one process. Each listener is supervised by name: if
// one dies the failure is logged and the other is shut down in an orderly way
// instead of leaving a half-alive process behind.
func main() {
	cfg := config.Load()

	if cfg.Env == enum.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.Setup(); err != nil {
		panic(err)
	}

	providerLog := logger.New("api2")
	gatewayLog := logger.New("api1")

	clockSvc, err := clock.NewService(providerLog)
	if err != nil {
		providerLog.Error.Println("Error loading timezones")
		panic(err)
	}

	providerRouter := newRouter(providerLog)
	provider.NewHandler(clockSvc, providerLog).NewRoutes(providerRouter)

	gatewayRouter := newRouter(gatewayLog)
	gateway.NewHandler(upstream.NewService(cfg, gatewayLog), gatewayLog).NewRoutes(gatewayRouter)

	providerSrv := server.New("api2", cfg.ProviderPort, providerRouter, providerLog)
	gatewaySrv := server.New("api1", cfg.GatewayPort, gatewayRouter, gatewayLog)

	errs := make(chan error, 2)
	providerSrv.Start(errs)
	gatewaySrv.Start(errs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case err := <-errs:
		gatewayLog.Error.Println(err)
		exitCode = 1
	case <-sigChan:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range []*server.Server{gatewaySrv, providerSrv} {
		if err := srv.Shutdown(ctx); err != nil {
			gatewayLog.Error.Printf("%s: %v", srv.Name(), err)
		}
	}

	os.Exit(exitCode)
}

func newRouter(log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.RequestInit())
	r.Use(middleware.HTTPLog(log))
	return r
}
