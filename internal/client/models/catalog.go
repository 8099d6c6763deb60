package models

// MealTime is a time-of-day bucket.
type MealTime string

const (
	MealTimeNone      MealTime = ""
	MealTimeBreakfast MealTime = "breakfast"
	MealTimeLunch     MealTime = "lunch"
	MealTimeDinner    MealTime = "dinner"
)

// MealTimes lists the buckets in display order.
var MealTimes = []MealTime{MealTimeBreakfast, MealTimeLunch, MealTimeDinner}

type Meal struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	Calories       int      `json:"calories"`
	Protein        int      `json:"protein"`
	Carbs          int      `json:"carbs"`
	Fat            int      `json:"fat"`
	RestaurantID   string   `json:"restaurantId"`
	Restaurant     string   `json:"restaurant"`
	RestaurantLogo string   `json:"restaurantLogo"`
	Categories     []string `json:"category"`
	Ingredients    []string `json:"ingredients"`
	Price          float64  `json:"price"`
	MealTime       MealTime `json:"mealTime,omitempty"`
}

// Nutrients returns the meal's macros as a loggable delta.
func (m Meal) Nutrients() Nutrients {
	return Nutrients{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	CuisineType string `json:"cuisineType"`
	Favorite    bool   `json:"favorite"`
}

// Category is a filter chip; ID "all" is the wildcard.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const CategoryAll = "all"
