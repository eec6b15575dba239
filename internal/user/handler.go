package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitsync/internal/auth"
	"github.com/2beens/fitsync/internal/middleware"
	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
	"github.com/2beens/fitsync/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=user_test

type sessionService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUserID(ctx context.Context, token string) (string, error)
}

type stateSource interface {
	State() State
	UpdateProfile(ctx context.Context, userID string, patch store.Document) error
}

type Handler struct {
	sessions sessionService
	state    stateSource
	// bcrypt hash of the app access secret checked on every login
	secretHash string

	now func() time.Time
}

func NewHandler(sessions sessionService, state stateSource, secretHash string) *Handler {
	return &Handler{
		sessions:   sessions,
		state:      state,
		secretHash: secretHash,
		now:        time.Now,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	loginRouter := router.Path("/login").Subrouter()
	loginRouter.Methods("POST", "OPTIONS").HandlerFunc(handler.HandleLogin).Name("login")
	// rate limit the /login endpoint to prevent abuse
	loginRouter.Use(middleware.RateLimit(rateLimiter, "login", loginRateLimitAllowedPerMin))

	router.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	router.HandleFunc("/me/state", handler.HandleState).Methods("GET", "OPTIONS").Name("state")
	router.HandleFunc("/me/profile", handler.HandleProfilePatch).Methods("PATCH", "OPTIONS").Name("patch-profile")
}

type LoginRequest struct {
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.login")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if !pkg.CheckPasswordHash(req.Secret, handler.secretHash) {
		log.Warnf("failed login attempt for [%s]", req.UserID)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}

	token, err := handler.sessions.Login(ctx, req.UserID, handler.now())
	if err != nil {
		log.Errorf("login for [%s]: %s", req.UserID, err)
		http.Error(w, "error, login failed", http.StatusInternalServerError)
		return
	}

	responseJson, err := json.Marshal(LoginResponse{Token: token})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		http.Error(w, "error, login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusCreated)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.logout")
	defer span.End()

	token := bearerToken(r)
	if token == "" {
		http.Error(w, "no token", http.StatusUnauthorized)
		return
	}

	if err := handler.sessions.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "error, logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged out")
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.state")
	defer span.End()

	if _, err := handler.sessions.CurrentUserID(ctx, bearerToken(r)); err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	stateJson, err := json.Marshal(handler.state.State())
	if err != nil {
		log.Errorf("marshal state: %s", err)
		http.Error(w, "error, failed to read state", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleProfilePatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.user.profilePatch")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, err := handler.sessions.CurrentUserID(ctx, bearerToken(r))
	if err != nil {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var patch store.Document
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("profile patch, unmarshal json params: %s", err)
		http.Error(w, "profile patch failed", http.StatusBadRequest)
		return
	}

	err = handler.state.UpdateProfile(ctx, userID, patch)
	switch {
	case errors.Is(err, ErrEmptyPatch):
		http.Error(w, "error, patch empty", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("profile patch for [%s]: %s", userID, err)
		http.Error(w, "error, failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
