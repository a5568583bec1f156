package services

import (
	"context"
	"time"

	"github.com/jenozu/fittrack-plus/store"
)

// Streak is the derived logging-streak state. A day counts toward a streak
// when the user logged at least one food or exercise entry that day; weight
// logs alone never count.
type Streak struct {
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	LastLoggedDate string `json:"last_logged_date,omitempty"`
}

type StreakService struct {
	store store.EntryStore
}

func NewStreakService(st store.EntryStore) *StreakService {
	return &StreakService{store: st}
}

// Streak recomputes the user's streaks from the distinct set of days with
// entries, fetched in one pass; nothing is persisted.
//
// Today gets a grace period: when asOf itself has no entries yet, the backward
// walk starts at the day before, so a streak is only broken once a full day
// passes without logging. Logging again today resumes the count.
func (s *StreakService) Streak(ctx context.Context, userID uint, asOf time.Time) (Streak, error) {
	dates, err := s.store.ActiveDates(ctx, userID)
	if err != nil {
		return Streak{}, storeErr(err)
	}
	if len(dates) == 0 {
		return Streak{}, nil
	}

	active := make(map[string]bool, len(dates))
	for _, d := range dates {
		active[dayKey(d)] = true
	}

	out := Streak{LastLoggedDate: dayKey(dates[len(dates)-1])}

	// current: walk backward day by day until the first gap
	day := dayStart(asOf)
	if !active[dayKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	for active[dayKey(day)] {
		out.CurrentStreak++
		day = day.AddDate(0, 0, -1)
	}

	// longest: one pass over the ascending distinct dates, tracking runs of
	// consecutive days
	run := 0
	var prev time.Time
	for i, d := range dates {
		if i > 0 && dayKey(prev.AddDate(0, 0, 1)) == dayKey(d) {
			run++
		} else {
			run = 1
		}
		if run > out.LongestStreak {
			out.LongestStreak = run
		}
		prev = d
	}

	return out, nil
}
