package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gadgetry/catalog"
	"gadgetry/db"
	"gadgetry/events"
	"gadgetry/ratelim"
	"gadgetry/rdx"
	"gadgetry/routes"
	"gadgetry/utils"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// listenAddr normalizes PORT into a listen address. The default stays
// clear of the storefront dev server on 8080.
func listenAddr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] != ':' {
		return ":" + port
	}
	return port
}

// setupRouter builds the router. The events routes are added separately
// in main so the hub isn't passed around globally.
func setupRouter(rateLimiter *ratelim.RateLimiter, hub *events.Hub) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Health)

	routes.AddCatalogRoutes(router)
	routes.AddCartRoutes(router, rateLimiter)
	routes.AddCheckoutRoutes(router, rateLimiter, hub)
	routes.AddOrderRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := listenAddr(os.Getenv("PORT"))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.Init(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	rdx.Init()

	if err := catalog.EnsureSeeded(ctx); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	cancel()

	rateLimiter := ratelim.NewRateLimiter()

	// order event hub for the websocket feed
	hub := events.NewHub()
	go hub.Run()

	router := setupRouter(rateLimiter, hub)
	routes.AddEventsRoutes(router, hub)

	// apply middleware: CORS → security headers → logging → router
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:8080"
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{frontend},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down order event hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
