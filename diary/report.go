// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/mood-diary/models"
)

// ScoreSeries maps entries to (date, score) bars in the order given.
// Moods outside the vocabulary score 0.
func ScoreSeries(entries []models.MoodEntry) []models.ScorePoint {
	series := make([]models.ScorePoint, len(entries))
	for i, e := range entries {
		series[i] = models.ScorePoint{
			Date:  e.Date,
			Score: models.ScoreOf(e.Mood),
		}
	}
	return series
}

// HistoryText renders entries as "<date>: <mood> - <comment>" lines, or
// models.EmptyHistoryText when there are none.
func HistoryText(entries []models.MoodEntry) string {
	if len(entries) == 0 {
		return models.EmptyHistoryText
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s - %s\n", e.Date, e.Mood, e.Comment)
	}
	return b.String()
}
