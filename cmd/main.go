package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/drivelane/drivelane-backend/internal/auth"
	"github.com/drivelane/drivelane-backend/internal/db"
	"github.com/drivelane/drivelane-backend/internal/handlers"
	"github.com/drivelane/drivelane-backend/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Info("Connected to MongoDB successfully")

	dbName := db.DatabaseName()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx, client, dbName); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	collections := db.NewCollections(client, dbName)
	authService := auth.NewService()

	upload, err := middleware.NewUpload(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	vehicleHandler := handlers.NewVehicleHandler(collections.Vehicles)
	infoHandler := handlers.NewInfoHandler(collections.Info)
	contactHandler := handlers.NewContactHandler(collections.Contacts)
	authHandler := handlers.NewAuthHandler(authService, collections.Users)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	vehicles := api.PathPrefix("/vehicles").Subrouter()
	vehicles.HandleFunc("/test", vehicleHandler.Test).Methods(http.MethodGet)
	vehicles.HandleFunc("/upload", upload.Excel(vehicleHandler.Upload)).Methods(http.MethodPost)
	vehicles.HandleFunc("", vehicleHandler.List).Methods(http.MethodGet)
	vehicles.HandleFunc("", vehicleHandler.Create).Methods(http.MethodPost)
	vehicles.HandleFunc("", vehicleHandler.DeleteAll).Methods(http.MethodDelete)
	vehicles.HandleFunc("/{id}", vehicleHandler.Get).Methods(http.MethodGet)
	vehicles.HandleFunc("/{id}", vehicleHandler.Update).Methods(http.MethodPut)
	vehicles.HandleFunc("/{id}", vehicleHandler.Delete).Methods(http.MethodDelete)

	info := api.PathPrefix("/info").Subrouter()
	info.HandleFunc("", infoHandler.Create).Methods(http.MethodPost)
	info.HandleFunc("", infoHandler.List).Methods(http.MethodGet)
	info.HandleFunc("/active", infoHandler.GetActive).Methods(http.MethodGet)
	info.HandleFunc("/{id}", infoHandler.Get).Methods(http.MethodGet)
	info.HandleFunc("/{id}", infoHandler.Update).Methods(http.MethodPut)
	info.HandleFunc("/{id}/activate", infoHandler.Activate).Methods(http.MethodPatch)
	info.HandleFunc("/{id}", infoHandler.Delete).Methods(http.MethodDelete)

	contacts := api.PathPrefix("/contacts").Subrouter()
	contacts.HandleFunc("", contactHandler.Create).Methods(http.MethodPost)
	contacts.HandleFunc("", contactHandler.List).Methods(http.MethodGet)
	contacts.HandleFunc("", contactHandler.DeleteAll).Methods(http.MethodDelete)
	contacts.HandleFunc("/{id}", contactHandler.Get).Methods(http.MethodGet)
	contacts.HandleFunc("/{id}", contactHandler.Delete).Methods(http.MethodDelete)

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout/{userId}", authHandler.Logout).Methods(http.MethodPost)
	authRoutes.HandleFunc("/me", authMiddleware.RequireAuth(authHandler.Me)).Methods(http.MethodGet)

	api.HandleFunc("/user/create-user", authHandler.Signup).Methods(http.MethodPost)

	handler := cors.AllowAll().Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("HTTP server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
