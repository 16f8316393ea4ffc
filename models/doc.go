// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the diary.

# Mood Vocabulary

Mood is a closed enum. MoodUnset ("-") is the "nothing selected" value a
front end starts with; it parses but is never valid for storage:

	m, ok := models.ParseMood("Счастливое")
	m.Score()       // 4
	m.Description() // "Счастливое состояние."

Moods() lists the ten storable levels from happiest (score 5) to awful
(score -4). ScoreOf maps a stored name to its score, returning 0 for names
outside the vocabulary.

# Domain Types

  - User: id, username, password hash (never serialized)
  - MoodEntry: one append-only diary row
  - Question: catalog prompt, optionally bound to a date
  - ScorePoint: (date, score) pair for the chart view

Dates are calendar days formatted with DateLayout (YYYY-MM-DD).

# Request and Response Types

  - RegisterRequest / RegisterResponse
  - LoginRequest / LoginResponse
  - SaveEntryRequest / SaveEntryResponse
  - MoodsResponse, QuestionResponse
  - ErrorResponse: error, message
*/
package models
