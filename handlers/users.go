// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/mood-diary/auth"
	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
)

type UserHandler struct {
	store *diary.Store
	cfg   cliparse.Config

	// At most one registration in flight per handler.
	mu          sync.Mutex
	registering bool
}

func NewUserHandler(store *diary.Store, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: store, cfg: cfg}
}

// beginRegistration claims the registration guard. The returned release
// func must be called when the registration finishes.
func (h *UserHandler) beginRegistration() (release func(), ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.registering {
		return nil, false
	}
	h.registering = true
	return func() {
		h.mu.Lock()
		h.registering = false
		h.mu.Unlock()
	}, true
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	release, ok := h.beginRegistration()
	if !ok {
		middleware.ErrorResponse(w, http.StatusConflict, "Registration already in progress")
		return
	}
	defer release()

	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := h.store.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, diary.ErrPasswordTooLong):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password is too long")
		return
	case errors.Is(err, diary.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill in all fields")
		return
	case errors.Is(err, diary.ErrUsernameTaken):
		middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
		return
	case err != nil:
		slog.Error("failed to register user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("user registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		UserID: userID,
	})
}

// Login handles POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	userID, ok, err := h.store.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		slog.Error("failed to authenticate user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !ok {
		// Same message for unknown user and wrong password
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.IssueSessionToken(userID, h.cfg.SessionSecret, time.Now())
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		UserID: userID,
		Token:  token,
	})
}
