package model

import "time"

// Difficulty levels a course may carry. Level is stored as its raw string
// value; ordering in sorted views is plain string order, not difficulty rank.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ValidLevel reports whether s is one of the three enumerated levels.
func ValidLevel(s string) bool {
	return s == LevelBeginner || s == LevelIntermediate || s == LevelAdvanced
}

// Course represents a catalog entry. UserID is a weak reference to the
// creating user: it may point at a user that no longer matches any record
// and no cascade applies on either side.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – course title, non-empty.
//  Description – course description, non-empty.
//  Category    – free-form category label, non-empty.
//  Level       – one of beginner/intermediate/advanced.
//  Duration    – length in hours, strictly positive whole number.
//  Published   – whether the course is visible as published.
//  UserID      – id of the user who created the course (weak reference).
//  CreatedAt   – creation timestamp, immutable after insert.
//  UpdatedAt   – bumped on every update.
type Course struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Duration    int       `json:"duration"`
	Published   bool      `json:"published"`
	UserID      uint64    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
