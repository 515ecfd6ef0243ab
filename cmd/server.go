package cmd

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
)

const shutdownTimeout = 10 * time.Second

// APIServer starts the HTTP server on the given port and blocks until the
// process receives SIGINT or SIGTERM, then drains in-flight requests before
// returning.
func APIServer(route http.Handler, port string) {
	addr := fmt.Sprintf(":%s", port)
	server := &http.Server{
		Addr:    addr,
		Handler: route,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Server running on http://localhost%s\n", addr)
		errCh <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error:", err)
		}
	case sig := <-quit:
		fmt.Printf("Received %s, shutting down\n", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatal("Shutdown error:", err)
		}
	}
}
