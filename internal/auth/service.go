package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/2beens/fitsync/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitsync-session||"
	tokensSetKey     = "fitsync-sessions"
)

var ErrNoSession = errors.New("no session for token")

// StateListener is invoked on every sign-in (signedIn true) and
// sign-out (signedIn false) transition, with the affected user ID.
type StateListener func(userID string, signedIn bool)

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)

	mutex     sync.Mutex
	listeners []StateListener
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// OnAuthStateChanged registers a listener for sign-in/sign-out transitions.
// Listeners are invoked synchronously, in registration order.
func (as *Service) OnAuthStateChanged(listener StateListener) {
	as.mutex.Lock()
	defer as.mutex.Unlock()
	as.listeners = append(as.listeners, listener)
}

func (as *Service) Login(ctx context.Context, userID string, createdAt time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	sessionVal := fmt.Sprintf("%s||%d", userID, createdAt.Unix())
	if err := as.redisClient.Set(ctx, sessionKey, sessionVal, 0).Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	as.notify(userID, true)

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	userID, _, err := as.session(ctx, token)
	if err != nil {
		return err
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}

	as.notify(userID, false)

	return nil
}

// CurrentUserID resolves the user behind a session token. Returns
// ErrNoSession for unknown or expired tokens.
func (as *Service) CurrentUserID(ctx context.Context, token string) (string, error) {
	userID, createdAt, err := as.session(ctx, token)
	if err != nil {
		return "", err
	}
	if time.Since(createdAt) > as.ttl {
		return "", ErrNoSession
	}
	return userID, nil
}

func (as *Service) session(ctx context.Context, token string) (userID string, createdAt time.Time, err error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", time.Time{}, ErrNoSession
		}
		return "", time.Time{}, err
	}

	userID, createdAtUnixStr, found := strings.Cut(cmd.Val(), "||")
	if !found || userID == "" {
		return "", time.Time{}, fmt.Errorf("malformed session value for token %s", token)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed session created at: %w", err)
	}

	return userID, time.Unix(createdAtUnix, 0), nil
}

func (as *Service) notify(userID string, signedIn bool) {
	as.mutex.Lock()
	listeners := make([]StateListener, len(as.listeners))
	copy(listeners, as.listeners)
	as.mutex.Unlock()

	for _, listener := range listeners {
		listener(userID, signedIn)
	}
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		_, createdAt, err := as.session(ctx, token)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if time.Since(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}
