package service

import (
	"database/sql"
	"testing"

	"github.com/lmarsden/mentorlog/internal/config"
	"github.com/lmarsden/mentorlog/internal/repository"
	"github.com/lmarsden/mentorlog/internal/testutil"
)

type testEnv struct {
	db       *sql.DB
	cfg      *config.Config
	dayRepo  repository.DayLogRepo
	sessRepo repository.SessionRepo
	days     DayService
	sessions SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	cfg := &config.Config{
		DatabaseURL: ":memory:",
		ExportDir:   t.TempDir(),
		Categories:  config.DefaultCategories,
	}
	dayRepo := repository.NewSQLiteDayLogRepo(database)
	sessRepo := repository.NewSQLiteSessionRepo(database)
	days := NewDayService(dayRepo)

	return &testEnv{
		db:       database,
		cfg:      cfg,
		dayRepo:  dayRepo,
		sessRepo: sessRepo,
		days:     days,
		sessions: NewSessionService(sessRepo, days, cfg),
	}
}

func validInput() SessionInput {
	return SessionInput{
		GroupName:           "Group 26",
		Category:            "Code Review",
		ActivityDescription: "Reviewed assignment progress.",
		Hours:               1,
		Minutes:             0,
	}
}
