package models

// ActionKind identifies a point-earning user action.
type ActionKind string

const (
	ActionCheckIn  ActionKind = "check_in"
	ActionWeight   ActionKind = "weight_entry"
	ActionMeal     ActionKind = "meal_entry"
	ActionReaction ActionKind = "community_reaction"
)

// Points awarded per action kind, plus the flat bonus per badge earned.
const (
	PointsCheckIn  = 10
	PointsWeight   = 25
	PointsMeal     = 15
	PointsReaction = 5
	PointsPerBadge = 75
)

// PointsForAction returns the routine point award for an action kind.
func PointsForAction(kind ActionKind) int {
	switch kind {
	case ActionCheckIn:
		return PointsCheckIn
	case ActionWeight:
		return PointsWeight
	case ActionMeal:
		return PointsMeal
	case ActionReaction:
		return PointsReaction
	default:
		return 0
	}
}

// BadgeCondition is the record count a badge threshold is checked against.
type BadgeCondition string

const (
	ConditionWeightEntries BadgeCondition = "weight_entry"
	ConditionCheckIns      BadgeCondition = "check_in"
	// ConditionStreak is evaluated as a cumulative check-in count.
	// TODO: replace with consecutive-calendar-day detection ending today.
	ConditionStreak BadgeCondition = "streak"
)

// BadgeDef is a badge with its unlock threshold.
type BadgeDef struct {
	ID        string
	Name      string
	Condition BadgeCondition
	Threshold int
}

// Badges lists every badge the app can award, in evaluation order.
var Badges = []BadgeDef{
	{ID: "first-step", Name: "De Eerste Stap", Condition: ConditionWeightEntries, Threshold: 1},
	{ID: "weigh-master", Name: "Weegmeester", Condition: ConditionWeightEntries, Threshold: 10},
	{ID: "first-checkin", Name: "Eerste Check-in", Condition: ConditionCheckIns, Threshold: 1},
	{ID: "loyal-checker", Name: "Trouwe Checker", Condition: ConditionCheckIns, Threshold: 10},
	{ID: "week-streak", Name: "Week Streak", Condition: ConditionStreak, Threshold: 7},
	{ID: "month-streak", Name: "Maand Streak", Condition: ConditionStreak, Threshold: 30},
}

// LevelTier is a named level covering the point range [Min, Max).
type LevelTier struct {
	Label string
	Min   int
	Max   int // exclusive; 0 means unbounded
}

// LevelTiers is ordered by ascending Min. The first tier starts at 0,
// so every non-negative point total maps to exactly one label.
var LevelTiers = []LevelTier{
	{Label: "Starter", Min: 0, Max: 250},
	{Label: "Brons", Min: 250, Max: 1000},
	{Label: "Zilver", Min: 1000, Max: 2500},
	{Label: "Goud", Min: 2500, Max: 5000},
	{Label: "Platina", Min: 5000, Max: 0},
}

// StarterLevel is the label new accounts begin at.
const StarterLevel = "Starter"

// LevelForPoints derives the level label from a point total.
func LevelForPoints(points int) string {
	for _, tier := range LevelTiers {
		if points >= tier.Min && (tier.Max == 0 || points < tier.Max) {
			return tier.Label
		}
	}
	return StarterLevel
}

// Notification is a user-visible message queued by the progress aggregator.
type Notification struct {
	Message string `json:"message"`
	Points  int    `json:"points"`
}
