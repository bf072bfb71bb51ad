package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lmarsden/mentorlog/internal/config"
	"github.com/lmarsden/mentorlog/internal/domain"
	"github.com/lmarsden/mentorlog/internal/repository"
)

// ErrUnknownCategory means the session category is not in the configured
// allow-list. Extend the list via configuration, not code.
var ErrUnknownCategory = errors.New("unknown session category")

type sessionService struct {
	sessions repository.SessionRepo
	days     DayService
	cfg      *config.Config
}

func NewSessionService(sessions repository.SessionRepo, days DayService, cfg *config.Config) SessionService {
	return &sessionService{sessions: sessions, days: days, cfg: cfg}
}

func (s *sessionService) LogSession(ctx context.Context, date time.Time, in SessionInput) (*domain.MentorshipSession, error) {
	if err := s.checkCategory(in.Category); err != nil {
		return nil, err
	}

	day, err := s.days.GetOrCreateDay(ctx, date)
	if err != nil {
		return nil, err
	}

	sess := &domain.MentorshipSession{
		DayLogID:            day.ID,
		GroupName:           in.GroupName,
		Category:            in.Category,
		ActivityDescription: in.ActivityDescription,
		DurationHours:       in.Hours,
		DurationMinutes:     in.Minutes,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionService) ListSessionsForDay(ctx context.Context, date time.Time) ([]*domain.MentorshipSession, error) {
	day, err := s.days.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, nil
	}
	return s.sessions.ListByDayLog(ctx, day.ID)
}

func (s *sessionService) UpdateSession(ctx context.Context, id int64, in SessionInput) (*domain.MentorshipSession, error) {
	if err := s.checkCategory(in.Category); err != nil {
		return nil, err
	}

	existing, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	existing.GroupName = in.GroupName
	existing.Category = in.Category
	existing.ActivityDescription = in.ActivityDescription
	existing.DurationHours = in.Hours
	existing.DurationMinutes = in.Minutes

	if err := s.sessions.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id int64) (bool, error) {
	return s.sessions.Delete(ctx, id)
}

func (s *sessionService) checkCategory(cat string) error {
	if !s.cfg.ValidCategory(cat) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	return nil
}
