// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/mood-diary/middleware"
	"github.com/danielhkuo/mood-diary/models"
)

// ListMoods handles GET /moods
// The vocabulary for the entry form, happiest first
func ListMoods(w http.ResponseWriter, r *http.Request) {
	moods := models.Moods()
	resp := models.MoodsResponse{
		Unset: models.UnsetMoodName,
		Moods: make([]models.MoodInfo, len(moods)),
	}
	for i, m := range moods {
		resp.Moods[i] = models.MoodInfo{
			Name:        m.String(),
			Score:       m.Score(),
			Description: m.Description(),
		}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
