package models

import "github.com/google/uuid"

// DateLayout is the day-granularity form all entry dates are stored in.
const DateLayout = "2006-01-02"

// WeightEntry is a single weight measurement in kilograms.
type WeightEntry struct {
	EntryID uuid.UUID `json:"entry_id"`
	Date    string    `json:"date"`
	Weight  float64   `json:"weight"`
}

// DailyCheckIn is one day's self-reported ratings, each on a 1-10 scale.
type DailyCheckIn struct {
	EntryID  uuid.UUID `json:"entry_id"`
	Date     string    `json:"date"`
	Energy   int       `json:"energy"`
	Strength int       `json:"strength"`
	Hunger   int       `json:"hunger"`
	Mood     int       `json:"mood"`
	Stress   int       `json:"stress"`
	Sleep    int       `json:"sleep"`
	Steps    *int      `json:"steps,omitempty"`
}

// MealEntry is a logged meal with its calorie count.
type MealEntry struct {
	EntryID     uuid.UUID `json:"entry_id"`
	Date        string    `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Calories    int       `json:"calories"`
}
