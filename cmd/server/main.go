package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/studyforge/backend/internal/auth"
	"github.com/studyforge/backend/internal/challenges"
	"github.com/studyforge/backend/internal/database"
	"github.com/studyforge/backend/internal/generator"
	"github.com/studyforge/backend/internal/middleware"
	"github.com/studyforge/backend/internal/notes"
	"github.com/studyforge/backend/internal/review"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Stores and services
	noteStore := notes.NewStore(db)
	challengeStore := challenges.NewStore(db)
	reviewStore := review.NewStore(db)

	gen := generator.NewGenerator()
	reviewService := review.NewService(reviewStore, review.NewClock())
	challengeService := challenges.NewService(challengeStore, noteStore, gen)

	// Handlers
	authHandler := auth.NewHandler(db, reviewService)
	noteHandler := notes.NewHandler(noteStore)
	challengeHandler := challenges.NewHandler(challengeService)
	reviewHandler := review.NewHandler(reviewService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	// Notes
	protected.HandleFunc("/notes", noteHandler.ListNotes).Methods("GET")
	protected.HandleFunc("/notes", noteHandler.CreateNote).Methods("POST")
	protected.HandleFunc("/notes/{id:[0-9]+}", noteHandler.GetNote).Methods("GET")
	protected.HandleFunc("/notes/{id:[0-9]+}", noteHandler.UpdateNote).Methods("PUT")
	protected.HandleFunc("/notes/{id:[0-9]+}", noteHandler.DeleteNote).Methods("DELETE")

	// Challenges
	protected.HandleFunc("/notes/{id:[0-9]+}/challenges", challengeHandler.ListForNote).Methods("GET")
	protected.HandleFunc("/notes/{id:[0-9]+}/challenges/generate", challengeHandler.GenerateForNote).Methods("POST")

	// Review engine
	protected.HandleFunc("/challenges/due", reviewHandler.GetDueChallenges).Methods("GET")
	protected.HandleFunc("/challenges/history", reviewHandler.GetHistory).Methods("GET")
	protected.HandleFunc("/challenges/stats", reviewHandler.GetStats).Methods("GET")
	protected.HandleFunc("/challenges/{id:[0-9]+}/answer", reviewHandler.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/progress/today", reviewHandler.GetTodayProgress).Methods("GET")
	protected.HandleFunc("/leaderboard", reviewHandler.GetLeaderboard).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
