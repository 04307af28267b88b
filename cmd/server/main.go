package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/edgarceron/toptal-project/internal/config"
	"github.com/edgarceron/toptal-project/internal/database"
	"github.com/edgarceron/toptal-project/internal/repository/mongodb"
	"github.com/edgarceron/toptal-project/internal/service"
	"github.com/edgarceron/toptal-project/internal/transport/http/handlers"
	"github.com/edgarceron/toptal-project/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Client().Disconnect(context.Background())
	log.Println("Connected to database")

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := mongodb.NewUserRepo(db)
	apartmentRepo := mongodb.NewApartmentRepo(db)
	blobRepo, err := mongodb.NewBlobRepo(db)
	if err != nil {
		log.Fatal(err)
	}

	// Services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	apartmentService := service.NewApartmentService(apartmentRepo, blobRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	apartmentHandler := handlers.NewApartmentHandler(apartmentService)

	// Auth middleware
	auth := middleware.Auth(authService)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /user/", userHandler.Register)
	mux.HandleFunc("POST /token", authHandler.Token)

	// Protected - Users
	mux.Handle("GET /users/me/", auth(http.HandlerFunc(userHandler.Me)))
	mux.Handle("GET /users/me/apartments/{page}", auth(middleware.RequireRealtor(http.HandlerFunc(apartmentHandler.ListMine))))

	// Protected - Apartments
	mux.Handle("POST /apartment/", auth(middleware.RequireRealtor(http.HandlerFunc(apartmentHandler.Create))))
	mux.Handle("GET /apartment/{id}", auth(http.HandlerFunc(apartmentHandler.Get)))
	mux.Handle("GET /apartment/{id}/image", auth(http.HandlerFunc(apartmentHandler.Image)))
	mux.Handle("PATCH /apartment/{id}", auth(middleware.RequireRealtor(http.HandlerFunc(apartmentHandler.Update))))
	mux.Handle("DELETE /apartment/{id}", auth(http.HandlerFunc(apartmentHandler.Delete)))
	mux.Handle("POST /search_apartments", auth(http.HandlerFunc(apartmentHandler.Search)))

	// Start server with CORS
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, corsHandler(mux)))
}
