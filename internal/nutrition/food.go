package nutrition

import (
	"time"

	"github.com/2beens/fitsync/internal/store"
)

// FoodRecord is one food item as returned by the external lookup API or a
// user-defined custom food. Lookup data is untrusted and partially missing;
// any absent macro decodes to zero.
type FoodRecord struct {
	Name        string  `json:"name"`
	ServingSize string  `json:"servingSize,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
	Sugar       float64 `json:"sugar"`
}

// LoggedFood is one day-log entry: a food record scaled by a serving
// multiplier.
type LoggedFood struct {
	Food       FoodRecord `json:"food"`
	Multiplier float64    `json:"multiplier"`
	LoggedAt   time.Time  `json:"loggedAt"`
}

// DayTotals are the summed macros of a day's logged foods.
type DayTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
}

func (t *DayTotals) add(f LoggedFood) {
	m := f.Multiplier
	if m <= 0 {
		m = 1
	}
	t.Calories += f.Food.Calories * m
	t.Protein += f.Food.Protein * m
	t.Fat += f.Food.Fat * m
	t.Carbs += f.Food.Carbs * m
	t.Sugar += f.Food.Sugar * m
}

// DecodeFoodRecord decodes a custom-food document from the remote store.
func DecodeFoodRecord(doc store.Document) FoodRecord {
	return FoodRecord{
		Name:        store.GetString(doc, "name", ""),
		ServingSize: store.GetString(doc, "servingSize", ""),
		Calories:    store.GetFloat(doc, "calories", 0),
		Protein:     store.GetFloat(doc, "protein", 0),
		Fat:         store.GetFloat(doc, "fat", 0),
		Carbs:       store.GetFloat(doc, "carbs", 0),
		Sugar:       store.GetFloat(doc, "sugar", 0),
	}
}

func (f FoodRecord) Document() store.Document {
	return store.Document{
		"name":        f.Name,
		"servingSize": f.ServingSize,
		"calories":    f.Calories,
		"protein":     f.Protein,
		"fat":         f.Fat,
		"carbs":       f.Carbs,
		"sugar":       f.Sugar,
	}
}
