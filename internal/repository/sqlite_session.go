package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmarsden/mentorlog/internal/db"
	"github.com/lmarsden/mentorlog/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo over a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.MentorshipSession) error {
	query := `INSERT INTO mentorship_sessions
		(day_log_id, group_name, category, activity_description, duration_hours, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.DayLogID,
		s.GroupName,
		s.Category,
		s.ActivityDescription,
		s.DurationHours,
		s.DurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("inserting mentorship session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.MentorshipSession, error) {
	query := `SELECT id, day_log_id, group_name, category, activity_description, duration_hours, duration_minutes
		FROM mentorship_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListByDayLog(ctx context.Context, dayLogID int64) ([]*domain.MentorshipSession, error) {
	query := `SELECT id, day_log_id, group_name, category, activity_description, duration_hours, duration_minutes
		FROM mentorship_sessions WHERE day_log_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, dayLogID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by day log: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.MentorshipSession) error {
	query := `UPDATE mentorship_sessions
		SET group_name = ?, category = ?, activity_description = ?, duration_hours = ?, duration_minutes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.GroupName,
		s.Category,
		s.ActivityDescription,
		s.DurationHours,
		s.DurationMinutes,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating mentorship session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mentorship session %d: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM mentorship_sessions WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting mentorship session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted rows: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteSessionRepo) ListRange(ctx context.Context, start, end *time.Time) ([]ExportRow, error) {
	query := `SELECT d.date, s.group_name, s.category, s.activity_description, s.duration_hours, s.duration_minutes
		FROM mentorship_sessions s
		JOIN day_logs d ON s.day_log_id = d.id`
	var args []any
	var conds []string
	if start != nil {
		conds = append(conds, "d.date >= ?")
		args = append(args, normalizeDate(*start).Format(dateLayout))
	}
	if end != nil {
		conds = append(conds, "d.date <= ?")
		args = append(args, normalizeDate(*end).Format(dateLayout))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY d.date, s.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions in range: %w", err)
	}
	defer rows.Close()

	var result []ExportRow
	for rows.Next() {
		var row ExportRow
		var dateStr string
		if err := rows.Scan(&dateStr, &row.GroupName, &row.Category, &row.ActivityDescription,
			&row.DurationHours, &row.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scanning export row: %w", err)
		}
		if row.Date, err = parseDate(dateStr); err != nil {
			return nil, fmt.Errorf("parsing export row date: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteSessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mentorship_sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}

func (r *SQLiteSessionRepo) GroupSummaries(ctx context.Context) ([]GroupSummary, error) {
	query := `SELECT group_name, COUNT(*), SUM(duration_hours * 60 + duration_minutes)
		FROM mentorship_sessions GROUP BY group_name ORDER BY group_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing groups: %w", err)
	}
	defer rows.Close()

	var summaries []GroupSummary
	for rows.Next() {
		var g GroupSummary
		if err := rows.Scan(&g.GroupName, &g.SessionCount, &g.TotalMinutes); err != nil {
			return nil, fmt.Errorf("scanning group summary: %w", err)
		}
		summaries = append(summaries, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating group summaries: %w", err)
	}
	return summaries, nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.MentorshipSession, error) {
	var s domain.MentorshipSession
	err := row.Scan(&s.ID, &s.DayLogID, &s.GroupName, &s.Category, &s.ActivityDescription,
		&s.DurationHours, &s.DurationMinutes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("mentorship session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mentorship session: %w", err)
	}
	return &s, nil
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.MentorshipSession, error) {
	var sessions []*domain.MentorshipSession
	for rows.Next() {
		var s domain.MentorshipSession
		err := rows.Scan(&s.ID, &s.DayLogID, &s.GroupName, &s.Category, &s.ActivityDescription,
			&s.DurationHours, &s.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}
