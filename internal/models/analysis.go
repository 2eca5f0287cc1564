package models

// MealAnalysis is what the external vision service derives from a meal photo.
type MealAnalysis struct {
	Name        string `json:"name"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
}
