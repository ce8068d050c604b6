package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/backend"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/geocode"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/messaging"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/order"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/router"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/session"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"BACKEND_URL",
		"CHANNEL_ACCESS_TOKEN",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── CLIENTS ─────────────────────────
	backendClient := backend.NewClient()
	platformClient := messaging.NewClient()
	geocodeClient := geocode.NewClient()

	// ───────────────────────── SERVICES ─────────────────────────
	store := session.NewInMemoryStore()
	go store.RunJanitor(10 * time.Minute)

	sessionService := session.NewService(store, backendClient, platformClient)
	orderService := order.NewService(backendClient, platformClient, sessionService)

	// ───────────────────────── HANDLERS ─────────────────────────
	sessionHandler := session.NewHandler(sessionService)
	orderHandler := order.NewHandler(orderService)
	geocodeHandler := geocode.NewHandler(geocodeClient)

	r := router.New(store, sessionHandler, orderHandler, geocodeHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
