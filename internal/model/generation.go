package model

// FitnessRequest is the POST body of /api/fitness/generate. All fields are
// sent, trimmed, even when empty.
type FitnessRequest struct {
	Goal       string `json:"goal"`
	Experience string `json:"experience"`
	Equipment  string `json:"equipment"`
	Injuries   string `json:"injuries"`
	Prompt     string `json:"prompt"`
}

// FoodRequest is the POST body of /api/food/generate.
type FoodRequest struct {
	DietPref string `json:"diet_pref"`
	Schedule string `json:"schedule"`
	Prompt   string `json:"prompt"`
}

// GenerationResult is what both generators return.
type GenerationResult struct {
	Content      string `json:"content"`
	UsedCalendar bool   `json:"used_calendar"`
	Error        string `json:"error,omitempty"`
}

// PlanRequest is the POST body of /plan.
type PlanRequest struct {
	Goal     string `json:"goal"`
	DietPref string `json:"diet_pref"`
}

// DayPlan is the body of /plan: one workout, one meal plan and a schedule
// fitted around the calendar.
type DayPlan struct {
	Workout  string `json:"workout"`
	Meal     string `json:"meal"`
	Schedule string `json:"schedule"`
	Error    string `json:"error,omitempty"`
}
