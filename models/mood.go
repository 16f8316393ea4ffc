// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Mood is one level of the closed mood vocabulary.
type Mood int

// Mood levels, happiest first. MoodUnset is the "nothing selected" sentinel
// and is never stored.
const (
	MoodUnset Mood = iota
	MoodHappiest
	MoodHappy
	MoodContent
	MoodNeutral
	MoodSlightlyDown
	MoodAnnoyed
	MoodAnxious
	MoodSad
	MoodDepressed
	MoodAwful
)

// UnsetMoodName is the display value of MoodUnset.
const UnsetMoodName = "-"

type moodInfo struct {
	name        string
	score       int
	description string
}

var moodTable = [...]moodInfo{
	MoodUnset:        {UnsetMoodName, 0, ""},
	MoodHappiest:     {"Самый счастливый человек на земле", 5, "Высшее счастье."},
	MoodHappy:        {"Счастливое", 4, "Счастливое состояние."},
	MoodContent:      {"Удовлетворенное", 3, "Чувство удовлетворения."},
	MoodNeutral:      {"Нейтральное", 2, "Нейтральное состояние."},
	MoodSlightlyDown: {"Слегка подавленное", 1, "Небольшое беспокойство."},
	MoodAnnoyed:      {"Раздосадованное", 0, "Чувство раздражения."},
	MoodAnxious:      {"Тревожный", -1, "Беспокойное настроение."},
	MoodSad:          {"Грустное", -2, "Печальное ощущение."},
	MoodDepressed:    {"Подавленное", -3, "Угнетенное состояние."},
	MoodAwful:        {"Ужасное", -4, "Крайнее страдание."},
}

var moodByName = func() map[string]Mood {
	m := make(map[string]Mood, len(moodTable))
	for i, info := range moodTable {
		m[info.name] = Mood(i)
	}
	return m
}()

// Moods returns the ten selectable levels in vocabulary order.
func Moods() []Mood {
	out := make([]Mood, 0, len(moodTable)-1)
	for m := MoodHappiest; m <= MoodAwful; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMood looks up a mood by its display name. The sentinel parses
// successfully as MoodUnset; callers check Valid before storing.
func ParseMood(name string) (Mood, bool) {
	m, ok := moodByName[name]
	return m, ok
}

// Valid reports whether m is a storable level.
func (m Mood) Valid() bool {
	return m >= MoodHappiest && m <= MoodAwful
}

func (m Mood) String() string {
	if m < 0 || int(m) >= len(moodTable) {
		return ""
	}
	return moodTable[m].name
}

// Score is the chart value, from 5 (happiest) down to -4 (awful).
func (m Mood) Score() int {
	if !m.Valid() {
		return 0
	}
	return moodTable[m].score
}

func (m Mood) Description() string {
	if !m.Valid() {
		return ""
	}
	return moodTable[m].description
}

// ScoreOf maps a stored mood name to its score. Unknown names score 0.
func ScoreOf(name string) int {
	m, _ := ParseMood(name)
	return m.Score()
}
