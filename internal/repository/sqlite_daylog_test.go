package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lmarsden/mentorlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayLogRepo_CreateAndGetByDate(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDayLog(testutil.Date(2024, time.January, 1), testutil.WithNotes("kickoff"))
	require.NoError(t, repo.Create(ctx, d))
	assert.NotZero(t, d.ID, "Create should assign the id")

	fetched, err := repo.GetByDate(ctx, testutil.Date(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, d.ID, fetched.ID)
	assert.Equal(t, "kickoff", fetched.Notes)
	assert.True(t, fetched.Date.Equal(testutil.Date(2024, time.January, 1)))
}

func TestDayLogRepo_Create_DuplicateDate(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(testutil.Date(2024, time.March, 15))))

	err := repo.Create(ctx, testutil.NewTestDayLog(testutil.Date(2024, time.March, 15)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestDayLogRepo_GetByDate_NormalizesTimeOfDay(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(testutil.Date(2024, time.May, 2))))

	// A timestamp later the same day addresses the same day log.
	afternoon := time.Date(2024, time.May, 2, 15, 30, 0, 0, time.UTC)
	fetched, err := repo.GetByDate(ctx, afternoon)
	require.NoError(t, err)
	assert.True(t, fetched.Date.Equal(testutil.Date(2024, time.May, 2)))
}

func TestDayLogRepo_GetByDate_NotFound(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))

	_, err := repo.GetByDate(context.Background(), testutil.Date(2030, time.December, 25))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDayLogRepo_UpdateNotes(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	date := testutil.Date(2024, time.February, 10)
	require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(date, testutil.WithNotes("before"))))

	updated, err := repo.UpdateNotes(ctx, date, "after")
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Notes)
}

func TestDayLogRepo_UpdateNotes_MissingDay(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))

	_, err := repo.UpdateNotes(context.Background(), testutil.Date(2024, time.February, 11), "notes")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDayLogRepo_DeleteByDate_Idempotent(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	date := testutil.Date(2024, time.June, 3)
	require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(date)))

	deleted, err := repo.DeleteByDate(ctx, date)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByDate(ctx, date)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")
}

func TestDayLogRepo_DeleteRange(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(testutil.Date(2024, time.July, day))))
	}

	n, err := repo.DeleteRange(ctx, testutil.Date(2024, time.July, 2), testutil.Date(2024, time.July, 4))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.True(t, remaining[0].Date.Equal(testutil.Date(2024, time.July, 1)))
	assert.True(t, remaining[1].Date.Equal(testutil.Date(2024, time.July, 5)))
}

func TestDayLogRepo_ListAndCount(t *testing.T) {
	repo := NewSQLiteDayLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Insert out of date order; List should come back sorted by date.
	require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(testutil.Date(2024, time.April, 20))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestDayLog(testutil.Date(2024, time.April, 5))))

	logs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].Date.Before(logs[1].Date))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
