package models

// Difficulty indicates how involved a dish is to prepare
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// MenuItem is one orderable dish on the storefront menu. Items are immutable;
// identity is the ID.
type MenuItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       Money      `json:"-"`
	Description string     `json:"description"`
	PrepTime    string     `json:"prep_time,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Category    string     `json:"category,omitempty"`
}
