package workouts

import (
	"strings"
	"time"
	"unicode"

	"github.com/2beens/fitsync/internal/store"
)

// Set is one performed (or planned) set of an exercise. Immutable once
// committed to history, mutable only while the workout is still active.
type Set struct {
	Number      int       `json:"number"`
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	IsCompleted bool      `json:"isCompleted"`
	Timestamp   time.Time `json:"timestamp"`
}

func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// Exercise is a catalog entry plus the sets of the current workout. The name
// acts as a natural key: normalized for storage, capitalized for display.
type Exercise struct {
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscleGroups,omitempty"`
	Equipment    string    `json:"equipment,omitempty"`
	Sets         []Set     `json:"sets"`
	CreatedAt    time.Time `json:"createdAt"`
	SetCount     int64     `json:"setCount"`
	LastSetAt    time.Time `json:"lastSetAt"`
}

// Summary condenses one exercise of a finished workout for the workout record.
type Summary struct {
	ExerciseName    string  `json:"exerciseName"`
	TotalSets       int     `json:"totalSets"`
	MaxReps         int     `json:"maxReps"`
	WeightAtMaxReps float64 `json:"weightAtMaxReps"`
}

// Record is an append-only entry in a user's workout history, optionally
// mirrored into group workout histories.
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Exercises []Summary `json:"exercises"`
	// set only on group mirrors
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
}

type Template struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
	EditedAt  time.Time  `json:"editedAt"`
}

// StorageKey normalizes an exercise or template name into its document key,
// e.g. "Bench Press" -> "bench_press". Anything that is not a letter or a
// digit maps to an underscore, so the key always stays a single document
// path component ("Clean/Jerk" must not address a nested collection).
func StorageKey(name string) string {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, strings.TrimSpace(name))
	key = strings.Trim(key, "_")
	if key == "" {
		return "_"
	}
	return key
}

// DisplayName turns a storage key back into a capitalized display name,
// e.g. "bench_press" -> "Bench Press"
func DisplayName(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func DecodeSet(doc store.Document) Set {
	return Set{
		Number:      int(store.GetInt(doc, "number", 0)),
		Weight:      store.GetFloat(doc, "weight", 0),
		Reps:        int(store.GetInt(doc, "reps", 0)),
		IsCompleted: store.GetBool(doc, "isCompleted", false),
		Timestamp:   store.GetTime(doc, "timestamp", time.Time{}),
	}
}

func (s Set) Document() store.Document {
	return store.Document{
		"number":      s.Number,
		"weight":      s.Weight,
		"reps":        s.Reps,
		"isCompleted": s.IsCompleted,
		"timestamp":   s.Timestamp,
	}
}

func DecodeExercise(id string, doc store.Document) Exercise {
	sets := make([]Set, 0)
	for _, setDoc := range store.GetDocSlice(doc, "sets") {
		sets = append(sets, DecodeSet(setDoc))
	}
	return Exercise{
		Name:         store.GetString(doc, "name", DisplayName(id)),
		MuscleGroups: store.GetStringSlice(doc, "muscleGroups"),
		Equipment:    store.GetString(doc, "equipment", ""),
		Sets:         sets,
		CreatedAt:    store.GetTime(doc, "createdAt", time.Time{}),
		SetCount:     store.GetInt(doc, "setCount", 0),
		LastSetAt:    store.GetTime(doc, "lastSetAt", time.Time{}),
	}
}

func (e Exercise) Document() store.Document {
	sets := make([]any, 0, len(e.Sets))
	for _, s := range e.Sets {
		sets = append(sets, map[string]any(s.Document()))
	}
	doc := store.Document{
		"name":      e.Name,
		"equipment": e.Equipment,
		"sets":      sets,
		"createdAt": e.CreatedAt,
	}
	if len(e.MuscleGroups) > 0 {
		doc["muscleGroups"] = e.MuscleGroups
	}
	return doc
}

func DecodeRecord(id string, doc store.Document) Record {
	summaries := make([]Summary, 0)
	for _, sumDoc := range store.GetDocSlice(doc, "exercises") {
		summaries = append(summaries, Summary{
			ExerciseName:    store.GetString(sumDoc, "exerciseName", ""),
			TotalSets:       int(store.GetInt(sumDoc, "totalSets", 0)),
			MaxReps:         int(store.GetInt(sumDoc, "maxReps", 0)),
			WeightAtMaxReps: store.GetFloat(sumDoc, "weightAtMaxReps", 0),
		})
	}
	return Record{
		ID:        id,
		Title:     store.GetString(doc, "title", ""),
		Timestamp: store.GetTime(doc, "timestamp", time.Time{}),
		Exercises: summaries,
		UserID:    store.GetString(doc, "userId", ""),
		GroupID:   store.GetString(doc, "groupId", ""),
	}
}

func (r Record) Document() store.Document {
	summaries := make([]any, 0, len(r.Exercises))
	for _, s := range r.Exercises {
		summaries = append(summaries, map[string]any{
			"exerciseName":    s.ExerciseName,
			"totalSets":       s.TotalSets,
			"maxReps":         s.MaxReps,
			"weightAtMaxReps": s.WeightAtMaxReps,
		})
	}
	doc := store.Document{
		"title":     r.Title,
		"timestamp": r.Timestamp,
		"exercises": summaries,
	}
	if r.UserID != "" {
		doc["userId"] = r.UserID
	}
	if r.GroupID != "" {
		doc["groupId"] = r.GroupID
	}
	return doc
}

func DecodeTemplate(id string, doc store.Document) Template {
	exercises := make([]Exercise, 0)
	for _, exDoc := range store.GetDocSlice(doc, "exercises") {
		exercises = append(exercises, DecodeExercise(StorageKey(store.GetString(exDoc, "name", "")), exDoc))
	}
	return Template{
		ID:        id,
		Title:     store.GetString(doc, "title", ""),
		Exercises: exercises,
		EditedAt:  store.GetTime(doc, "editedAt", time.Time{}),
	}
}

func (t Template) Document() store.Document {
	exercises := make([]any, 0, len(t.Exercises))
	for _, e := range t.Exercises {
		exercises = append(exercises, map[string]any(e.Document()))
	}
	return store.Document{
		"title":     t.Title,
		"exercises": exercises,
		"editedAt":  t.EditedAt,
	}
}
