package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Karthiknalam/mern-store-frontend/internal/devserver"
	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

func main() {
	port := getEnv("DEV_SERVER_PORT", "3000")
	adminEmail := getEnv("DEV_ADMIN_EMAIL", "admin@example.com")
	adminPassword := getEnv("DEV_ADMIN_PASSWORD", "admin")

	srv := devserver.New()
	admin := srv.SeedAdmin(adminEmail, adminPassword)
	log.Printf("seeded admin %s (id %s)", admin.Email, admin.ID)
	seedCatalog(srv)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("dev server listening on :%s", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func seedCatalog(srv *devserver.Server) {
	products := []domain.Product{
		{ProductName: "Wireless Headphones", Description: "Over-ear, noise cancelling", Price: 129.99},
		{ProductName: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: 89.5},
		{ProductName: "USB-C Hub", Description: "7 ports, HDMI and ethernet", Price: 39.99},
		{ProductName: "Desk Lamp", Description: "Adjustable color temperature", Price: 24},
		{ProductName: "Laptop Stand", Description: "Aluminium, foldable", Price: 31.25},
	}
	for _, p := range products {
		srv.SeedProduct(p)
	}
	log.Printf("seeded %d products", len(products))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
