package user

import (
	"time"

	"github.com/2beens/fitsync/internal/nutrition"
	"github.com/2beens/fitsync/internal/store"
)

// profileCompletionFields is the fixed field set the completion ratio is
// computed over.
var profileCompletionFields = []string{
	"weight", "height", "dateOfBirth", "sex", "activityLevel", "goal",
}

// Profile is the typed user profile plus the aggregate stats kept on the
// same document. Every optional field decodes to a documented fallback so
// downstream consumers never branch on absence.
type Profile struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	Sex           string    `json:"sex"`
	ActivityLevel string    `json:"activityLevel"`
	Goal          string    `json:"goal"`
	WeightLb      float64   `json:"weight"`
	HeightIn      float64   `json:"height"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`

	// aggregate stats, maintained by the workout commit fan-out
	LastWorkoutAt time.Time `json:"lastWorkoutAt"`
	WorkoutStreak int       `json:"workoutStreak"`
	TotalPRs      int64     `json:"totalPRs"`

	// Completion is recomputed on every decode, never persisted as its
	// own fact
	Completion float64 `json:"completion"`
}

// DecodeProfile converts a raw profile document into the typed record:
// missing strings become the NotSet sentinel, missing numbers zero, a
// missing date of birth the current date. The completion ratio is computed
// from the raw document before the fallbacks are applied.
func DecodeProfile(id string, doc store.Document, now time.Time) Profile {
	return Profile{
		ID:            id,
		FirstName:     store.GetString(doc, "firstName", nutrition.NotSet),
		LastName:      store.GetString(doc, "lastName", nutrition.NotSet),
		Email:         store.GetString(doc, "email", nutrition.NotSet),
		DateOfBirth:   store.GetTime(doc, "dateOfBirth", now),
		Sex:           store.GetString(doc, "sex", nutrition.NotSet),
		ActivityLevel: store.GetString(doc, "activityLevel", nutrition.NotSet),
		Goal:          store.GetString(doc, "goal", nutrition.NotSet),
		WeightLb:      store.GetFloat(doc, "weight", 0),
		HeightIn:      store.GetFloat(doc, "height", 0),
		ImageURL:      store.GetString(doc, "imageUrl", ""),
		CreatedAt:     store.GetTime(doc, "createdAt", now),
		LastWorkoutAt: store.GetTime(doc, "lastWorkoutAt", time.Time{}),
		WorkoutStreak: int(store.GetInt(doc, "workoutStreak", 0)),
		TotalPRs:      store.GetInt(doc, "totalPRs", 0),
		Completion:    completionRatio(doc),
	}
}

// EmptyProfile is the placeholder state before sign-in and after sign-out.
func EmptyProfile(now time.Time) Profile {
	return DecodeProfile("", store.Document{}, now)
}

// completionRatio is completedFieldCount / totalFieldCount over the fixed
// six-field set; a field counts as complete when the raw document carries a
// usable value for it.
func completionRatio(doc store.Document) float64 {
	completed := 0
	for _, field := range profileCompletionFields {
		if fieldComplete(doc, field) {
			completed++
		}
	}
	return float64(completed) / float64(len(profileCompletionFields))
}

func fieldComplete(doc store.Document, field string) bool {
	switch field {
	case "weight", "height":
		return store.GetFloat(doc, field, 0) > 0
	case "dateOfBirth":
		return !store.GetTime(doc, field, time.Time{}).IsZero()
	default:
		value := store.GetString(doc, field, nutrition.NotSet)
		return value != nutrition.NotSet
	}
}

// NutritionInputs maps the profile onto the goal calculator's inputs. A date
// of birth still at its current-date fallback counts as missing there.
func (p Profile) NutritionInputs() nutrition.Inputs {
	return nutrition.Inputs{
		DateOfBirth:   p.DateOfBirth,
		WeightLb:      p.WeightLb,
		HeightIn:      p.HeightIn,
		Sex:           p.Sex,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}
}
