package notification

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aliskhannn/edutrack/internal/model"
)

// nextOccurrence returns the first time strictly after after that repeats the
// wall clock time of anchor in loc, every day or on anchor's weekday depending on r.
func nextOccurrence(anchor, after time.Time, r model.Repeat, loc *time.Location) (time.Time, error) {
	local := anchor.In(loc)

	var expr string
	switch r {
	case model.RepeatDaily:
		expr = fmt.Sprintf("%d %d * * *", local.Minute(), local.Hour())
	case model.RepeatWeekly:
		expr = fmt.Sprintf("%d %d * * %d", local.Minute(), local.Hour(), int(local.Weekday()))
	default:
		return time.Time{}, fmt.Errorf("no recurrence for repeat %q", r)
	}

	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse recurrence %q: %w", expr, err)
	}

	next := sched.Next(after.In(loc))
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("no next occurrence for %q", expr)
	}

	return next, nil
}
