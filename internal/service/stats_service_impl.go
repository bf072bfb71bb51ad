package service

import (
	"context"

	"github.com/lmarsden/mentorlog/internal/repository"
)

type statsService struct {
	days     repository.DayLogRepo
	sessions repository.SessionRepo
}

func NewStatsService(days repository.DayLogRepo, sessions repository.SessionRepo) StatsService {
	return &statsService{days: days, sessions: sessions}
}

func (s *statsService) Collect(ctx context.Context) (*Stats, error) {
	dayCount, err := s.days.Count(ctx)
	if err != nil {
		return nil, err
	}
	sessionCount, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.sessions.GroupSummaries(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		DayCount:     dayCount,
		SessionCount: sessionCount,
		Groups:       groups,
	}
	if dayCount > 0 {
		total := 0
		for _, g := range groups {
			total += g.TotalMinutes
		}
		stats.AvgDailyMinutes = float64(total) / float64(dayCount)
	}
	return stats, nil
}
