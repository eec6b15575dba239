package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type foodLookup interface {
	SearchByName(ctx context.Context, text string) ([]FoodRecord, error)
	LookupByBarcode(ctx context.Context, code string) (*FoodRecord, error)
}

type dayLog interface {
	Add(ctx context.Context, userID string, food LoggedFood) error
	Today(ctx context.Context, userID string) ([]LoggedFood, error)
	Totals(ctx context.Context, userID string) (DayTotals, error)
}

// goalsSource supplies the calculator inputs of the current profile state.
type goalsSource interface {
	NutritionInputs(ctx context.Context, userID string) (Inputs, error)
}

type userResolver interface {
	CurrentUserID(ctx context.Context, token string) (string, error)
}

type Handler struct {
	lookup foodLookup
	log    dayLog
	goals  goalsSource
	users  userResolver

	now func() time.Time
}

func NewHandler(lookup foodLookup, log dayLog, goals goalsSource, users userResolver) *Handler {
	return &Handler{
		lookup: lookup,
		log:    log,
		goals:  goals,
		users:  users,
		now:    time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/nutrition/search", handler.HandleSearch).Methods("GET", "OPTIONS").Name("search-foods")
	router.HandleFunc("/nutrition/barcode/{code}", handler.HandleBarcode).Methods("GET", "OPTIONS").Name("lookup-barcode")
	router.HandleFunc("/nutrition/log", handler.HandleLogFood).Methods("POST", "OPTIONS").Name("log-food")
	router.HandleFunc("/nutrition/log", handler.HandleDayLog).Methods("GET", "OPTIONS").Name("day-log")
	router.HandleFunc("/nutrition/goals", handler.HandleGoals).Methods("GET", "OPTIONS").Name("nutrition-goals")
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.search")
	defer span.End()

	if _, err := handler.currentUser(ctx, r); err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	foods, err := handler.lookup.SearchByName(ctx, r.URL.Query().Get("q"))
	switch {
	case errors.Is(err, ErrEmptyFoodName):
		http.Error(w, "error, food name empty", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("search foods: %s", err)
		http.Error(w, "error, food search failed", http.StatusInternalServerError)
		return
	}

	foodsJson, err := json.Marshal(foods)
	if err != nil {
		log.Errorf("marshal foods: %s", err)
		http.Error(w, "error, food search failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodsJson, http.StatusOK)
}

func (handler *Handler) HandleBarcode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.barcode")
	defer span.End()

	if _, err := handler.currentUser(ctx, r); err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	food, err := handler.lookup.LookupByBarcode(ctx, mux.Vars(r)["code"])
	switch {
	case errors.Is(err, ErrEmptyBarcode):
		http.Error(w, "error, barcode empty", http.StatusBadRequest)
		return
	case errors.Is(err, ErrFoodNotFound):
		http.Error(w, "error, food not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("lookup barcode: %s", err)
		http.Error(w, "error, barcode lookup failed", http.StatusInternalServerError)
		return
	}

	foodJson, err := json.Marshal(food)
	if err != nil {
		log.Errorf("marshal food: %s", err)
		http.Error(w, "error, barcode lookup failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusOK)
}

func (handler *Handler) HandleLogFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logFood")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var food LoggedFood
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		log.Tracef("log food, unmarshal json params: %s", err)
		http.Error(w, "log food failed", http.StatusBadRequest)
		return
	}

	err = handler.log.Add(ctx, userID, food)
	switch {
	case errors.Is(err, ErrEmptyFoodName):
		http.Error(w, "error, food name empty", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("log food for [%s]: %s", userID, err)
		http.Error(w, "error, failed to log food", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"logged":true}`)
}

type DayLogResponse struct {
	Foods  []LoggedFood `json:"foods"`
	Totals DayTotals    `json:"totals"`
}

func (handler *Handler) HandleDayLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.dayLog")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	foods, err := handler.log.Today(ctx, userID)
	if err != nil {
		log.Errorf("day log for [%s]: %s", userID, err)
		http.Error(w, "error, failed to read day log", http.StatusInternalServerError)
		return
	}

	var totals DayTotals
	for _, food := range foods {
		totals.add(food)
	}

	responseJson, err := json.Marshal(DayLogResponse{Foods: foods, Totals: totals})
	if err != nil {
		log.Errorf("marshal day log: %s", err)
		http.Error(w, "error, failed to read day log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func (handler *Handler) HandleGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.goals")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	inputs, err := handler.goals.NutritionInputs(ctx, userID)
	if err != nil {
		log.Errorf("nutrition inputs for [%s]: %s", userID, err)
		http.Error(w, "error, failed to compute goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(Calculate(inputs, handler.now()))
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "error, failed to compute goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalsJson, http.StatusOK)
}

func (handler *Handler) currentUser(ctx context.Context, r *http.Request) (string, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return handler.users.CurrentUserID(ctx, token)
}
