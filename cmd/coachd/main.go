package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/openlearn/coach/internal/api/http"
	auth "github.com/openlearn/coach/internal/auth/middleware"
	"github.com/openlearn/coach/internal/config"
	"github.com/openlearn/coach/internal/content"
	"github.com/openlearn/coach/internal/content/httpsource"
	"github.com/openlearn/coach/internal/db"
	"github.com/openlearn/coach/internal/exam"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := exam.NewSQLStore(dbh, cfg.DBDriver)

	// --- Content source + aggregator ---
	src := httpsource.New(httpsource.Config{
		BaseURL: cfg.ContentBaseURL,
		Timeout: cfg.ContentTimeout,
	})
	agg := content.NewAggregator(src)

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.CoachUser, cfg.CoachPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		api.Mount(pr, store, agg, src, api.LogNotifier{})
	})

	log.Printf("coachd listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
