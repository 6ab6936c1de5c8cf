// cmd/relay/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vintagecottage/storefront/internal/config"
	"github.com/vintagecottage/storefront/internal/relay"
)

// The relay runs as its own process so the WhatsApp provider key never
// ships to the API server's deployment, let alone the browser.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := relay.NewClient(cfg.WhatsApp)
	r := relay.Router(client)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.WhatsApp.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting relay on port %s", cfg.WhatsApp.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start relay:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down relay...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Relay forced to shutdown:", err)
	}

	log.Println("Relay exited")
}
