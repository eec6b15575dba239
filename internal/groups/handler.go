package groups

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=groups_test

type groupService interface {
	Memberships(ctx context.Context, userID string) ([]Membership, error)
	Create(ctx context.Context, userID, displayName, name, description string) (*Group, error)
	Join(ctx context.Context, userID, displayName, joinCode string) (*Group, error)
	Leave(ctx context.Context, userID, groupID string) error
	Delete(ctx context.Context, userID, groupID string) error
}

type groupResolver interface {
	Resolve(ctx context.Context, memberships []Membership) ([]Group, error)
}

type userResolver interface {
	CurrentUserID(ctx context.Context, token string) (string, error)
}

type Handler struct {
	service  groupService
	resolver groupResolver
	users    userResolver
}

func NewHandler(service groupService, resolver groupResolver, users userResolver) *Handler {
	return &Handler{
		service:  service,
		resolver: resolver,
		users:    users,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/groups", handler.HandleList).Methods("GET", "OPTIONS").Name("list-groups")
	router.HandleFunc("/groups", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-group")
	router.HandleFunc("/groups/join", handler.HandleJoin).Methods("POST", "OPTIONS").Name("join-group")
	router.HandleFunc("/groups/{id}/leave", handler.HandleLeave).Methods("POST", "OPTIONS").Name("leave-group")
	router.HandleFunc("/groups/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-group")
}

// HandleList resolves the caller's memberships into full group records.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groups.list")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	memberships, err := handler.service.Memberships(ctx, userID)
	if err != nil {
		log.Errorf("list groups for [%s]: %s", userID, err)
		http.Error(w, "error, failed to list groups", http.StatusInternalServerError)
		return
	}

	resolved, err := handler.resolver.Resolve(ctx, memberships)
	if err != nil {
		log.Errorf("resolve groups for [%s]: %s", userID, err)
		http.Error(w, "error, failed to list groups", http.StatusInternalServerError)
		return
	}

	resolvedJson, err := json.Marshal(resolved)
	if err != nil {
		log.Errorf("marshal groups: %s", err)
		http.Error(w, "error, failed to list groups", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resolvedJson, http.StatusOK)
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DisplayName string `json:"displayName"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groups.create")
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

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create group, unmarshal json params: %s", err)
		http.Error(w, "create group failed", http.StatusBadRequest)
		return
	}

	group, err := handler.service.Create(ctx, userID, req.DisplayName, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, ErrEmptyGroupName) {
			http.Error(w, "error, group name empty", http.StatusBadRequest)
			return
		}
		log.Errorf("create group for [%s]: %s", userID, err)
		http.Error(w, "error, failed to create group", http.StatusInternalServerError)
		return
	}

	groupJson, err := json.Marshal(group)
	if err != nil {
		log.Errorf("marshal group: %s", err)
		http.Error(w, "error, failed to create group", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, groupJson, http.StatusCreated)
}

type JoinGroupRequest struct {
	JoinCode    string `json:"joinCode"`
	DisplayName string `json:"displayName"`
}

func (handler *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groups.join")
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

	var req JoinGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("join group, unmarshal json params: %s", err)
		http.Error(w, "join group failed", http.StatusBadRequest)
		return
	}

	group, err := handler.service.Join(ctx, userID, req.DisplayName, req.JoinCode)
	switch {
	case errors.Is(err, ErrEmptyJoinCode):
		http.Error(w, "error, join code empty", http.StatusBadRequest)
		return
	case errors.Is(err, ErrGroupNotFound):
		http.Error(w, "error, group not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrAlreadyMember):
		http.Error(w, "error, already a member", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("join group for [%s]: %s", userID, err)
		http.Error(w, "error, failed to join group", http.StatusInternalServerError)
		return
	}

	groupJson, err := json.Marshal(group)
	if err != nil {
		log.Errorf("marshal group: %s", err)
		http.Error(w, "error, failed to join group", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, groupJson, http.StatusOK)
}

func (handler *Handler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groups.leave")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	groupID := mux.Vars(r)["id"]
	if groupID == "" {
		http.Error(w, "error, group id empty", http.StatusBadRequest)
		return
	}

	err = handler.service.Leave(ctx, userID, groupID)
	switch {
	case errors.Is(err, ErrGroupNotFound):
		http.Error(w, "error, group not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("leave group [%s] for [%s]: %s", groupID, userID, err)
		http.Error(w, "error, failed to leave group", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"leftId":"`+groupID+`"}`)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groups.delete")
	defer span.End()

	userID, err := handler.currentUser(ctx, r)
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	groupID := mux.Vars(r)["id"]
	if groupID == "" {
		http.Error(w, "error, group id empty", http.StatusBadRequest)
		return
	}

	err = handler.service.Delete(ctx, userID, groupID)
	switch {
	case errors.Is(err, ErrGroupNotFound):
		http.Error(w, "error, group not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrNotGroupAdmin):
		http.Error(w, "error, not a group admin", http.StatusForbidden)
		return
	case err != nil:
		log.Errorf("delete group [%s] for [%s]: %s", groupID, userID, err)
		http.Error(w, "error, failed to delete group", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deletedId":"`+groupID+`"}`)
}

func (handler *Handler) currentUser(ctx context.Context, r *http.Request) (string, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return handler.users.CurrentUserID(ctx, token)
}
