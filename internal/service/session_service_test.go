package service

import (
	"context"
	"testing"
	"time"

	"github.com/lmarsden/mentorlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_LogSession_CreatesDayOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	date := testutil.Date(2024, time.January, 10)

	// First log on a fresh date: exactly one new day, one new session.
	first, err := env.sessions.LogSession(ctx, date, validInput())
	require.NoError(t, err)
	require.NotNil(t, first)

	dayCount, err := env.dayRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dayCount)

	// Second log on the same date: zero additional days, one more session.
	second, err := env.sessions.LogSession(ctx, date, validInput())
	require.NoError(t, err)
	assert.Equal(t, first.DayLogID, second.DayLogID)

	dayCount, err = env.dayRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dayCount)

	sessCount, err := env.sessRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sessCount)
}

func TestSessionService_LogSession_RejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	in := validInput()
	in.Category = "Interpretive Dance"
	_, err := env.sessions.LogSession(context.Background(), testutil.Date(2024, time.January, 10), in)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	n, err := env.dayRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "validation happens before any day is created")
}

func TestSessionService_LogSession_KeepsRawMinutes(t *testing.T) {
	env := newTestEnv(t)

	in := validInput()
	in.Hours = 0
	in.Minutes = 90 // out of the conventional range on purpose
	sess, err := env.sessions.LogSession(context.Background(), testutil.Date(2024, time.January, 11), in)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.DurationHours)
	assert.Equal(t, 90, sess.DurationMinutes)
	assert.Equal(t, "0h 90m", sess.DurationLabel())
}

func TestSessionService_ListSessionsForDay_AbsentDay(t *testing.T) {
	env := newTestEnv(t)

	list, err := env.sessions.ListSessionsForDay(context.Background(), testutil.Date(2024, time.May, 5))
	require.NoError(t, err)
	assert.Empty(t, list, "missing day yields an empty list, not an error")
}

func TestSessionService_UpdateSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.LogSession(ctx, testutil.Date(2024, time.June, 6), validInput())
	require.NoError(t, err)

	in := SessionInput{
		GroupName:           "Group 30",
		Category:            "Career Planning",
		ActivityDescription: "Discussed growth plan",
		Hours:               0,
		Minutes:             30,
	}
	updated, err := env.sessions.UpdateSession(ctx, sess.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Group 30", updated.GroupName)
	assert.Equal(t, "Career Planning", updated.Category)
	assert.Equal(t, 30, updated.DurationMinutes)
	assert.Equal(t, sess.DayLogID, updated.DayLogID, "update never reparents a session")
}

func TestSessionService_UpdateSession_MissingIDMutatesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.sessions.LogSession(ctx, testutil.Date(2024, time.June, 7), validInput())
	require.NoError(t, err)

	updated, err := env.sessions.UpdateSession(ctx, sess.ID+1000, validInput())
	require.NoError(t, err)
	assert.Nil(t, updated, "unknown id is an absent result")

	// The existing session is untouched.
	list, err := env.sessions.ListSessionsForDay(ctx, testutil.Date(2024, time.June, 7))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Group 26", list[0].GroupName)
}

func TestSessionService_DeleteSession_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	date := testutil.Date(2024, time.June, 8)

	sess, err := env.sessions.LogSession(ctx, date, validInput())
	require.NoError(t, err)

	deleted, err := env.sessions.DeleteSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err := env.sessions.ListSessionsForDay(ctx, date)
	require.NoError(t, err)
	for _, s := range list {
		assert.NotEqual(t, sess.ID, s.ID)
	}

	deleted, err = env.sessions.DeleteSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete of the same id reports false")
}
