package service

import (
	"context"
	"testing"
	"time"

	"github.com/lmarsden/mentorlog/internal/repository"
	"github.com/lmarsden/mentorlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayService_GetDay_AbsentIsNil(t *testing.T) {
	env := newTestEnv(t)

	d, err := env.days.GetDay(context.Background(), testutil.Date(2024, time.January, 1))
	require.NoError(t, err)
	assert.Nil(t, d, "absence is a nil result, not an error")
}

func TestDayService_CreateDay_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	date := testutil.Date(2024, time.January, 1)

	_, err := env.days.CreateDay(ctx, date, "first")
	require.NoError(t, err)

	_, err = env.days.CreateDay(ctx, date, "second")
	assert.ErrorIs(t, err, repository.ErrDuplicateDay)
}

func TestDayService_GetOrCreateDay_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	date := testutil.Date(2024, time.February, 14)

	first, err := env.days.GetOrCreateDay(ctx, date)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Empty(t, first.Notes, "implicitly created days have empty notes")

	second, err := env.days.GetOrCreateDay(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "both calls resolve to the same day row")

	n, err := env.dayRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDayService_UpdateNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	date := testutil.Date(2024, time.March, 1)

	_, err := env.days.CreateDay(ctx, date, "draft")
	require.NoError(t, err)

	updated, err := env.days.UpdateNotes(ctx, date, "final")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "final", updated.Notes)
}

func TestDayService_UpdateNotes_MissingDayIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.days.UpdateNotes(context.Background(), testutil.Date(2024, time.March, 2), "notes")
	require.NoError(t, err)
	assert.Nil(t, updated)

	n, err := env.dayRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "no day is created as a side effect")
}

func TestDayService_DeleteDay_CascadesToSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	date := testutil.Date(2024, time.April, 1)

	_, err := env.sessions.LogSession(ctx, date, validInput())
	require.NoError(t, err)

	deleted, err := env.days.DeleteDay(ctx, date)
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err := env.sessRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
