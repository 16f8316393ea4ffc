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

type QuestionHandler struct {
	store *diary.Store
}

func NewQuestionHandler(store *diary.Store) *QuestionHandler {
	return &QuestionHandler{store: store}
}

// Today handles GET /questions/today
// Assigns a question to today if needed; ?assign=false only reads
func (h *QuestionHandler) Today(w http.ResponseWriter, r *http.Request) {
	today := h.store.Today()

	var (
		question models.Question
		err      error
	)

	if r.URL.Query().Get("assign") == "false" {
		var found bool
		question, found, err = h.store.PeekQuestion(r.Context(), today)
		if err == nil && !found {
			middleware.ErrorResponse(w, http.StatusNotFound, "No question assigned for today")
			return
		}
	} else {
		question, err = h.store.AssignQuestion(r.Context(), today)
	}

	if errors.Is(err, diary.ErrNoQuestion) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No questions available")
		return
	}
	if err != nil {
		slog.Error("failed to load today's question", "error", err, "date", today)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionResponse{
		Date:     today,
		Question: question.Question,
	})
}
