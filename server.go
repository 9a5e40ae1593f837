package travelorder

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
)

var (
	server    *http.Server
	service   *Service
	responses *ResponseCache
)

// StartServer wires the HTTP API around svc and begins listening in the
// background.
func StartServer(svc *Service) {
	service = svc
	responses = NewResponseCache(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/resolve.json", handleResolveJSON)
	mux.HandleFunc("/api/journeys.json", handleJourneysJSON)
	mux.HandleFunc("/api/journeys.xml", handleJourneysXML)
	mux.HandleFunc("/api/stations.json", handleStationsJSON)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server error", zap.Error(err))
		}
	}()
	zap.L().Info("server listening", zap.String("addr", addr))
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, drains the server
// and logs the run summary.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	zap.L().Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			zap.L().Error("server shutdown error", zap.Error(err))
		} else {
			zap.L().Info("server shut down")
		}
	}
	if service != nil {
		service.Tracker().LogSummary()
	}
}
