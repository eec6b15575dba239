package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutCommitter interface {
	Commit(ctx context.Context, userID, title string, exercises []Exercise, groupIDs []string) (*CommitResult, error)
	RetryCatalogSync(ctx context.Context, recordID string) error
}

type templateStore interface {
	Save(ctx context.Context, userID string, template Template) (*Template, error)
	Recent(ctx context.Context, userID string, limit int) ([]Template, error)
	Delete(ctx context.Context, userID, templateID string) error
}

type userResolver interface {
	CurrentUserID(ctx context.Context, token string) (string, error)
}

type Handler struct {
	committer workoutCommitter
	templates templateStore
	users     userResolver
}

func NewHandler(committer workoutCommitter, templates templateStore, users userResolver) *Handler {
	return &Handler{
		committer: committer,
		templates: templates,
		users:     users,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleCommit).Methods("POST", "OPTIONS").Name("commit-workout")
	router.HandleFunc("/workouts/{id}/catalog-sync", handler.HandleCatalogSyncRetry).Methods("POST", "OPTIONS").Name("retry-catalog-sync")
	router.HandleFunc("/templates", handler.HandleSaveTemplate).Methods("POST", "OPTIONS").Name("save-template")
	router.HandleFunc("/templates", handler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-templates")
	router.HandleFunc("/templates/{id}", handler.HandleDeleteTemplate).Methods("DELETE", "OPTIONS").Name("delete-template")
}

type CommitRequest struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
	GroupIDs  []string   `json:"groupIds"`
}

func (handler *Handler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.commit")
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

	var req CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("commit workout, unmarshal json params: %s", err)
		http.Error(w, "commit workout failed", http.StatusBadRequest)
		return
	}

	result, err := handler.committer.Commit(ctx, userID, req.Title, req.Exercises, req.GroupIDs)
	switch {
	case errors.Is(err, ErrEmptyWorkout):
		http.Error(w, "error, workout has no sets", http.StatusBadRequest)
		return
	case errors.Is(err, ErrCatalogSyncFailed):
		// the workout itself is committed; report the partial failure
		log.Errorf("commit workout for [%s]: %s", userID, err)
	case err != nil:
		log.Errorf("commit workout for [%s]: %s", userID, err)
		http.Error(w, "error, failed to commit workout", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal commit result: %s", err)
		http.Error(w, "error, failed to commit workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleCatalogSyncRetry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.catalogSyncRetry")
	defer span.End()

	if _, err := handler.currentUser(ctx, r); err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	recordID := vars["id"]
	if recordID == "" {
		http.Error(w, "error, record id empty", http.StatusBadRequest)
		return
	}

	err := handler.committer.RetryCatalogSync(ctx, recordID)
	switch {
	case errors.Is(err, ErrNoPendingCatalog):
		http.Error(w, "no pending catalog sync", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("retry catalog sync [%s]: %s", recordID, err)
		http.Error(w, "error, catalog sync retry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"synced":true}`)
}

func (handler *Handler) HandleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveTemplate")
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

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Tracef("save template, unmarshal json params: %s", err)
		http.Error(w, "save template failed", http.StatusBadRequest)
		return
	}

	saved, err := handler.templates.Save(ctx, userID, template)
	if err != nil {
		if errors.Is(err, ErrEmptyTemplateTitle) {
			http.Error(w, "error, template title empty", http.StatusBadRequest)
			return
		}
		log.Errorf("save template for [%s]: %s", userID, err)
		http.Error(w, "error, failed to save template", http.StatusInternalServerError)
		return
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("marshal saved template: %s", err)
		http.Error(w, "error, failed to save template", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusOK)
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listTemplates")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	templates, err := handler.templates.Recent(ctx, userID, RecentTemplatesLimit)
	if err != nil {
		log.Errorf("list templates for [%s]: %s", userID, err)
		http.Error(w, "error, failed to list templates", http.StatusInternalServerError)
		return
	}

	templatesJson, err := json.Marshal(templates)
	if err != nil {
		log.Errorf("marshal templates: %s", err)
		http.Error(w, "error, failed to list templates", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, templatesJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteTemplate")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	templateID := vars["id"]
	if templateID == "" {
		http.Error(w, "error, template id empty", http.StatusBadRequest)
		return
	}

	if err := handler.templates.Delete(ctx, userID, templateID); err != nil {
		log.Errorf("delete template [%s] for [%s]: %s", templateID, userID, err)
		http.Error(w, "error, failed to delete template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deletedId":"`+templateID+`"}`)
}

func (handler *Handler) currentUser(ctx context.Context, r *http.Request) (string, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return handler.users.CurrentUserID(ctx, token)
}
