package model

// HabitCategory groups habits by life area.
type HabitCategory string

// Habit category values.
const (
	HabitFinancial    HabitCategory = "financial"
	HabitHealth       HabitCategory = "health"
	HabitProductivity HabitCategory = "productivity"
	HabitPersonal     HabitCategory = "personal"
	HabitOther        HabitCategory = "other"
)

// HabitFrequency is the cadence a habit targets.
type HabitFrequency string

// Habit frequency values.
const (
	HabitDaily   HabitFrequency = "daily"
	HabitWeekly  HabitFrequency = "weekly"
	HabitMonthly HabitFrequency = "monthly"
)

// Habit is a recurring behavior with per-date completion tracking.
// CompletedDates holds ISO dates (YYYY-MM-DD) and behaves as a set.
type Habit struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Category       HabitCategory  `json:"category"`
	Frequency      HabitFrequency `json:"frequency"`
	TargetDays     int            `json:"targetDays,omitempty"`
	CompletedDates []string       `json:"completedDates"`
	CreatedDate    string         `json:"createdDate"`
	Color          string         `json:"color,omitempty"`
}

// EntityID returns the record id.
func (h Habit) EntityID() string { return h.ID }

// CompletedOn reports whether the habit was completed on the given ISO date.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}
