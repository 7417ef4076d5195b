package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"lister-backend/internal/ebay"
	"lister-backend/internal/events"
	"lister-backend/internal/gemini"
	"lister-backend/internal/httpapi"
	"lister-backend/internal/optimizer"
	"lister-backend/internal/suggest"
	"lister-backend/internal/taxonomy"
	"lister-backend/internal/template"
	"lister-backend/internal/upc"
	"lister-backend/internal/vision"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_ADDR", "redis:6379"),
	})

	ebayClient := ebay.NewClient(ebay.ConfigFromEnv(), rdb)

	generator, err := gemini.NewClient(ctx)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	engine := suggest.NewEngine(generator)
	catalog := taxonomy.NewService(ebayClient)
	resolver := suggest.NewResolver(catalog, engine)

	publisher := events.NewPublisher()
	scanner := upc.NewService(ebayClient, upc.NewClient(), publisher)

	projector := events.NewProjector(ctx, rdb)

	// Start the scan projector in the background.
	go func() {
		log.Println("Starting scan projector consumer...")
		if err := projector.ConsumeScanTopic(ctx); err != nil {
			log.Printf("Scan projector error: %v", err)
		}
	}()

	server := &httpapi.Server{
		Catalog:   catalog,
		Resolver:  resolver,
		Scanner:   scanner,
		History:   projector,
		Vision:    vision.NewClient(),
		Market:    ebayClient,
		Templates: template.NewService(rdb),
		Optimizer: optimizer.NewService(generator),
		Listings:  ebayClient,
	}

	r := mux.NewRouter()
	server.RegisterRoutes(r)

	addr := getEnv("LISTER_HTTP_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down...")
		cancel()
		_ = httpServer.Shutdown(context.Background())
	}()

	log.Printf("Lister API listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
