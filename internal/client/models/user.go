// Package models defines the client-side data model shared by the stores,
// the gateway and the REPL.
package models

// DateLayout is the calendar-date format used for progress entries and
// subscription rows.
const DateLayout = "2006-01-02"

// Goals are daily nutrition targets.
type Goals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Nutrients is an amount consumed; it is also the delta passed to
// LogNutrition.
type Nutrients struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Add returns the element-wise sum of n and d.
func (n Nutrients) Add(d Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + d.Calories,
		Protein:  n.Protein + d.Protein,
		Carbs:    n.Carbs + d.Carbs,
		Fat:      n.Fat + d.Fat,
	}
}

// ProgressEntry is one calendar day of consumed nutrients.
type ProgressEntry struct {
	Date string `json:"date"`
	Nutrients
}

// User is the identity shown by the client. Progress holds exactly the
// trailing seven days, oldest first, once it has been materialized.
type User struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Avatar     string          `json:"avatar"`
	DailyGoals Goals           `json:"dailyGoals"`
	Progress   []ProgressEntry `json:"progress"`
}

// Clone returns a deep copy so snapshots never share slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Progress = append([]ProgressEntry(nil), u.Progress...)
	return &c
}
