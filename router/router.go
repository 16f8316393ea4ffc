// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/handlers"
	"github.com/danielhkuo/mood-diary/middleware"
)

func NewRouter(store *diary.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(store, cfg)
	entryHandler := handlers.NewEntryHandler(store)
	questionHandler := handlers.NewQuestionHandler(store)

	session := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(cfg.SessionSecret, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Login and registration
	mux.HandleFunc("POST /users/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /users/login", middleware.WithLogging(userHandler.Login))

	// Entry composition
	mux.HandleFunc("GET /moods", middleware.WithLogging(handlers.ListMoods))
	mux.HandleFunc("GET /questions/today", middleware.WithLogging(questionHandler.Today))
	mux.HandleFunc("POST /entries", session(entryHandler.SaveEntry))

	// History and chart views
	mux.HandleFunc("GET /entries", session(entryHandler.ListEntries))
	mux.HandleFunc("GET /entries/history", session(entryHandler.History))
	mux.HandleFunc("GET /entries/scores", session(entryHandler.Scores))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mood-diary API v1"))
	})

	return middleware.CORS(mux)
}
