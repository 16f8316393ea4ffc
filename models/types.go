package models

// DateLayout is the calendar-day format stored in the moods and questions
// tables.
const DateLayout = "2006-01-02"

// EmptyHistoryText is shown by the history view when a user has no entries.
const EmptyHistoryText = "Нет записей о настроении."

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SaveEntryRequest struct {
	Mood    string `json:"mood"`
	Comment string `json:"comment"`
	Answer  string `json:"answer"`
}

// Response types

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

type SaveEntryResponse struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

type MoodInfo struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

type MoodsResponse struct {
	Unset string     `json:"unset"`
	Moods []MoodInfo `json:"moods"`
}

type QuestionResponse struct {
	Date     string `json:"date"`
	Question string `json:"question"`
}

// Domain types

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

type MoodEntry struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	Mood           string `json:"mood"`
	Comment        string `json:"comment"`
	QuestionAnswer string `json:"question_answer"`
	Date           string `json:"date"` // YYYY-MM-DD
}

type Question struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Date     string `json:"date"` // empty while unassigned
}

// ScorePoint is one bar of the mood chart.
type ScorePoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
