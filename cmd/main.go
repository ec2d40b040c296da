package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/enerdev/turbine-parts/internal/auth"
	"github.com/enerdev/turbine-parts/internal/handlers"
	"github.com/enerdev/turbine-parts/internal/ingest"
	"github.com/enerdev/turbine-parts/internal/middleware"
	"github.com/enerdev/turbine-parts/internal/store"
	"github.com/enerdev/turbine-parts/internal/tracking"
)

func newStore() store.Store {
	backend := os.Getenv("STORE_BACKEND")
	if backend == "mongo" {
		client, err := store.ConnectMongo()
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MongoDB")
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "turbine_parts"
		}
		log.WithField("database", dbName).Info("Using MongoDB store")
		return store.NewMongoStore(client.Database(dbName).Collection("tracker"))
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data.json"
	}
	log.WithField("file", dataFile).Info("Using JSON file store")
	return store.NewFileStore(dataFile)
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	tracker, err := tracking.NewService(context.Background(), newStore())
	if err != nil {
		log.WithError(err).Fatal("Failed to load tracking data")
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}
	users := auth.NewUserRegistry()
	if err := users.SeedAdmin(authService); err != nil {
		log.WithError(err).Fatal("Failed to seed admin user")
	}

	api := handlers.NewAPI(tracker)
	authHandler := handlers.NewAuthHandler(authService, users)
	authMW := middleware.NewAuthMiddleware(authService)
	rateMW := middleware.NewRateLimitMiddleware()
	handler := handlers.RegisterRoutes(http.NewServeMux(), api, authHandler, authMW, rateMW)

	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		subscriber := ingest.NewSubscriber(broker, "turbine-parts-api", api)
		if err := subscriber.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start telemetry ingest")
		}
		defer subscriber.Stop()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Fatal("HTTP server stopped")
	}
}
