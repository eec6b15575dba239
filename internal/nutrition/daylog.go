package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitsync/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const dayLogKeyPrefix = "fitsync-daylog||"

// DayLog is the day-scoped nutrition log: a local-only list of logged foods
// that resets at a fixed local cutover hour. Entries have no cross-device
// consistency requirement, so redis (not the remote document store) holds
// them, keyed per (user, nutrition day).
type DayLog struct {
	redisClient *redis.Client
	cutoverHour int

	// injectable for testing
	Now func() time.Time
}

func NewDayLog(redisClient *redis.Client, cutoverHour int) *DayLog {
	if cutoverHour < 0 || cutoverHour > 23 {
		cutoverHour = 0
	}
	return &DayLog{
		redisClient: redisClient,
		cutoverHour: cutoverHour,
		Now:         time.Now,
	}
}

// Add appends a food to today's log.
func (l *DayLog) Add(ctx context.Context, userID string, food LoggedFood) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "daylog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if food.Food.Name == "" {
		return ErrEmptyFoodName
	}

	now := l.Now()
	if food.LoggedAt.IsZero() {
		food.LoggedAt = now
	}

	foodJson, err := json.Marshal(food)
	if err != nil {
		return fmt.Errorf("marshal logged food: %w", err)
	}

	key := l.key(userID, now)
	if err := l.redisClient.RPush(ctx, key, foodJson).Err(); err != nil {
		return fmt.Errorf("push logged food: %w", err)
	}
	// the whole day expires at its cutover, no cleanup job needed
	if err := l.redisClient.ExpireAt(ctx, key, l.nextCutover(now)).Err(); err != nil {
		return fmt.Errorf("set day log expiry: %w", err)
	}
	return nil
}

// Today lists the foods logged in the current nutrition day, oldest first.
func (l *DayLog) Today(ctx context.Context, userID string) (_ []LoggedFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "daylog.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := l.redisClient.LRange(ctx, l.key(userID, l.Now()), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read day log: %w", err)
	}

	foods := make([]LoggedFood, 0, len(entries))
	for _, entry := range entries {
		var food LoggedFood
		if err := json.Unmarshal([]byte(entry), &food); err != nil {
			log.Errorf("unmarshal day log entry for [%s]: %s", userID, err)
			continue
		}
		foods = append(foods, food)
	}
	return foods, nil
}

// Totals sums the macros of today's logged foods.
func (l *DayLog) Totals(ctx context.Context, userID string) (DayTotals, error) {
	foods, err := l.Today(ctx, userID)
	if err != nil {
		return DayTotals{}, err
	}

	var totals DayTotals
	for _, food := range foods {
		totals.add(food)
	}
	return totals, nil
}

// key returns the day-scoped redis key. Hours before the cutover count
// toward the previous nutrition day.
func (l *DayLog) key(userID string, now time.Time) string {
	day := now.Add(-time.Duration(l.cutoverHour) * time.Hour).Format("2006-01-02")
	return fmt.Sprintf("%s%s||%s", dayLogKeyPrefix, userID, day)
}

func (l *DayLog) nextCutover(now time.Time) time.Time {
	cutover := time.Date(now.Year(), now.Month(), now.Day(), l.cutoverHour, 0, 0, 0, now.Location())
	if !cutover.After(now) {
		cutover = cutover.AddDate(0, 0, 1)
	}
	return cutover
}
