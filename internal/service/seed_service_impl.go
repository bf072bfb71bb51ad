package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lmarsden/mentorlog/internal/db"
	"github.com/lmarsden/mentorlog/internal/domain"
	"github.com/lmarsden/mentorlog/internal/repository"
)

// seedActivities rotate across seeded weekdays.
var seedActivities = []struct {
	category string
	activity string
}{
	{"Code Review", "Reviewed current assignment progress."},
	{"Code Review", "Went through code quality checks and linting errors."},
	{"Pair Programming", "Worked together on a code question, taking turns at the keyboard."},
	{"Pair Programming", "Paired up the mentees to help each other with the weekly assignment."},
	{"1:1 Mentoring", "Weekly sync to check in on blockers and challenges."},
	{"1:1 Mentoring", "Performance review and feedback session."},
}

// seedDurations rotate alongside the activities. The 0h/90m entry is
// deliberate: stored durations are never normalized.
var seedDurations = [][2]int{{1, 0}, {0, 45}, {0, 90}, {2, 0}}

type seedService struct {
	uow db.UnitOfWork
}

func NewSeedService(uow db.UnitOfWork) SeedService {
	return &seedService{uow: uow}
}

// Populate clears the date range and fills every weekday in it with one
// generated session. The whole run is a single transaction: either the range
// is fully replaced or left untouched.
func (s *seedService) Populate(ctx context.Context, start, end time.Time, groupName string) (*SeedResult, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("seed range end %s is before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if groupName == "" {
		groupName = "Group 26"
	}

	var result SeedResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		days := repository.NewSQLiteDayLogRepo(tx)
		sessions := repository.NewSQLiteSessionRepo(tx)

		cleared, err := days.DeleteRange(ctx, start, end)
		if err != nil {
			return err
		}
		result.DaysCleared = cleared

		i := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}

			day := &domain.DayLog{Date: d}
			if err := days.Create(ctx, day); err != nil {
				return err
			}
			result.DaysCreated++

			act := seedActivities[i%len(seedActivities)]
			dur := seedDurations[i%len(seedDurations)]
			sess := &domain.MentorshipSession{
				DayLogID:            day.ID,
				GroupName:           groupName,
				Category:            act.category,
				ActivityDescription: act.activity,
				DurationHours:       dur[0],
				DurationMinutes:     dur[1],
			}
			if err := sessions.Create(ctx, sess); err != nil {
				return err
			}
			result.SessionsCreated++
			i++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seeding calendar: %w", err)
	}
	return &result, nil
}
