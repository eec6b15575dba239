package workouts

import "time"

// AdvanceStreak derives the new consecutive-day workout streak from the last
// known workout timestamp. A gap of more than one whole day breaks a nonzero
// streak; a last workout falling exactly on yesterday extends it by one;
// same-day repeats change nothing.
//
// This is advisory, best-effort logic: it runs client-side on listener data
// and is not transactionally tied to the write that produced the workout, so
// two devices can race and the last writer's increment wins.
func AdvanceStreak(lastWorkoutAt, now time.Time, current int) int {
	if lastWorkoutAt.IsZero() {
		return current
	}

	switch gap := dayGap(lastWorkoutAt, now); {
	case gap > 1:
		return 0
	case gap == 1:
		return current + 1
	default:
		return current
	}
}

// dayGap is the whole-day difference between the last workout and now.
// The commit coordinator uses the same gap to move the stored streak counter.
func dayGap(lastWorkoutAt, now time.Time) int {
	lastDay := lastWorkoutAt.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	return int(today.Sub(lastDay).Hours() / 24)
}
