package service

import (
	"context"
	"errors"
	"time"

	"github.com/lmarsden/mentorlog/internal/domain"
	"github.com/lmarsden/mentorlog/internal/repository"
)

type dayService struct {
	days repository.DayLogRepo
}

func NewDayService(days repository.DayLogRepo) DayService {
	return &dayService{days: days}
}

func (s *dayService) GetDay(ctx context.Context, date time.Time) (*domain.DayLog, error) {
	d, err := s.days.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (s *dayService) CreateDay(ctx context.Context, date time.Time, notes string) (*domain.DayLog, error) {
	d := &domain.DayLog{Date: date, Notes: notes}
	if err := s.days.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetOrCreateDay is the idempotent attach point for session logging. When the
// create loses a race against a concurrent writer, the uniqueness constraint
// rejects it and the winner's row is fetched instead.
func (s *dayService) GetOrCreateDay(ctx context.Context, date time.Time) (*domain.DayLog, error) {
	d, err := s.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if d != nil {
		return d, nil
	}

	created, err := s.CreateDay(ctx, date, "")
	if err == nil {
		return created, nil
	}
	if errors.Is(err, repository.ErrDuplicateDay) {
		return s.days.GetByDate(ctx, date)
	}
	return nil, err
}

func (s *dayService) UpdateNotes(ctx context.Context, date time.Time, notes string) (*domain.DayLog, error) {
	d, err := s.days.UpdateNotes(ctx, date, notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (s *dayService) DeleteDay(ctx context.Context, date time.Time) (bool, error) {
	return s.days.DeleteByDate(ctx, date)
}
