// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
)

type EntryHandler struct {
	store *diary.Store
}

func NewEntryHandler(store *diary.Store) *EntryHandler {
	return &EntryHandler{store: store}
}

// SaveEntry handles POST /entries
// Records the entry under today's date
func (h *EntryHandler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session required")
		return
	}

	var req models.SaveEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	now := h.store.Now()
	err := h.store.SaveEntry(r.Context(), userID, req.Mood, req.Comment, req.Answer, now)
	if errors.Is(err, diary.ErrInvalidMood) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please select a mood")
		return
	}
	if err != nil {
		slog.Error("failed to save mood entry", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	date := now.Format(models.DateLayout)
	slog.Info("mood entry saved", "user_id", userID, "date", date)

	middleware.JSONResponse(w, http.StatusCreated, models.SaveEntryResponse{
		Date:    date,
		Message: "Mood saved",
	})
}

// ListEntries handles GET /entries
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, ok := h.loadEntries(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, entries)
}

// History handles GET /entries/history
// Plain-text history, one "<date>: <mood> - <comment>" line per entry
func (h *EntryHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, ok := h.loadEntries(w, r)
	if !ok {
		return
	}
	middleware.TextResponse(w, http.StatusOK, diary.HistoryText(entries))
}

// Scores handles GET /entries/scores
// Returns the (date, score) series for the mood chart
func (h *EntryHandler) Scores(w http.ResponseWriter, r *http.Request) {
	entries, ok := h.loadEntries(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, diary.ScoreSeries(entries))
}

func (h *EntryHandler) loadEntries(w http.ResponseWriter, r *http.Request) ([]models.MoodEntry, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session required")
		return nil, false
	}

	entries, err := h.store.ListEntries(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list mood entries", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return entries, true
}
