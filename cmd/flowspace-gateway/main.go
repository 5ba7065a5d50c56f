package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flowspace-dev/flowspace/internal/logger"
	"github.com/flowspace-dev/flowspace/internal/proxy"
	"github.com/flowspace-dev/flowspace/internal/supervisor"
)

func main() {
	var (
		listen    string
		upstream  string
		startCmd  string
		logLevel  string
		logJSON   bool
		stopGrace time.Duration
	)
	flag.StringVar(&listen, "listen", ":8000", "address the gateway listens on")
	flag.StringVar(&upstream, "upstream", "http://localhost:8080", "API server to proxy to")
	flag.StringVar(&startCmd, "start", "", "optional command to launch the API server, e.g. './flowspace-api -config_folder config'")
	flag.StringVar(&logLevel, "log_level", "info", "log level")
	flag.BoolVar(&logJSON, "log_json", false, "log in JSON format")
	flag.DurationVar(&stopGrace, "stop_grace", 10*time.Second, "how long to wait for the API server to exit before killing it")
	flag.Parse()

	logger.Initialize(logLevel, logJSON)

	upstreamURL, err := url.Parse(upstream)
	if err != nil {
		logger.Log.Error("invalid upstream url", "upstream", upstream, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sup *supervisor.Supervisor
	if startCmd != "" {
		parts := strings.Fields(startCmd)
		sup = supervisor.New(parts[0], parts[1:]...)
		if err := sup.Start(); err != nil {
			logger.Log.Error("failed to start api server", "error", err)
			os.Exit(1)
		}
		// If the child dies on its own, the gateway has nothing to proxy to.
		go func() {
			if err := sup.Wait(); err != nil && !errors.Is(err, supervisor.ErrNotRunning) {
				logger.Log.Error("api server exited", "error", err)
			}
			stop()
		}()
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      proxy.New(upstreamURL),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("gateway started", "addr", listen, "upstream", upstream)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("gateway failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("gateway shutdown failed", "error", err)
	}

	if sup != nil && sup.State() == supervisor.Running {
		if err := sup.Stop(stopGrace); err != nil {
			logger.Log.Error("failed to stop api server", "error", err)
		}
	}
	logger.Log.Info("gateway stopped")
}
