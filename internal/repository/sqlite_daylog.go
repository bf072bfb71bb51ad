package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmarsden/mentorlog/internal/db"
	"github.com/lmarsden/mentorlog/internal/domain"
)

// SQLiteDayLogRepo implements DayLogRepo over a SQLite database. It accepts a
// db.DBTX so the same implementation works inside a transaction.
type SQLiteDayLogRepo struct {
	db db.DBTX
}

// NewSQLiteDayLogRepo creates a new SQLiteDayLogRepo.
func NewSQLiteDayLogRepo(dbtx db.DBTX) *SQLiteDayLogRepo {
	return &SQLiteDayLogRepo{db: dbtx}
}

func (r *SQLiteDayLogRepo) Create(ctx context.Context, d *domain.DayLog) error {
	d.Date = normalizeDate(d.Date)
	query := `INSERT INTO day_logs (date, notes) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, d.Date.Format(dateLayout), d.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("day log for %s: %w", d.Date.Format(dateLayout), ErrDuplicateDay)
		}
		return fmt.Errorf("inserting day log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading day log id: %w", err)
	}
	d.ID = id
	return nil
}

func (r *SQLiteDayLogRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DayLog, error) {
	query := `SELECT id, date, notes FROM day_logs WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, normalizeDate(date).Format(dateLayout))
	return r.scanDayLog(row)
}

func (r *SQLiteDayLogRepo) UpdateNotes(ctx context.Context, date time.Time, notes string) (*domain.DayLog, error) {
	query := `UPDATE day_logs SET notes = ? WHERE date = ?`
	res, err := r.db.ExecContext(ctx, query, notes, normalizeDate(date).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("updating day log notes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking updated rows: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("day log for %s: %w", normalizeDate(date).Format(dateLayout), ErrNotFound)
	}
	return r.GetByDate(ctx, date)
}

func (r *SQLiteDayLogRepo) DeleteByDate(ctx context.Context, date time.Time) (bool, error) {
	query := `DELETE FROM day_logs WHERE date = ?`
	res, err := r.db.ExecContext(ctx, query, normalizeDate(date).Format(dateLayout))
	if err != nil {
		return false, fmt.Errorf("deleting day log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking deleted rows: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteDayLogRepo) DeleteRange(ctx context.Context, start, end time.Time) (int64, error) {
	query := `DELETE FROM day_logs WHERE date >= ? AND date <= ?`
	res, err := r.db.ExecContext(ctx, query,
		normalizeDate(start).Format(dateLayout),
		normalizeDate(end).Format(dateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting day log range: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking deleted rows: %w", err)
	}
	return n, nil
}

func (r *SQLiteDayLogRepo) List(ctx context.Context) ([]*domain.DayLog, error) {
	query := `SELECT id, date, notes FROM day_logs ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing day logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.DayLog
	for rows.Next() {
		var d domain.DayLog
		var dateStr string
		if err := rows.Scan(&d.ID, &dateStr, &d.Notes); err != nil {
			return nil, fmt.Errorf("scanning day log row: %w", err)
		}
		if d.Date, err = parseDate(dateStr); err != nil {
			return nil, fmt.Errorf("parsing day log date: %w", err)
		}
		logs = append(logs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteDayLogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM day_logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting day logs: %w", err)
	}
	return n, nil
}

// scanDayLog scans a single day log from a *sql.Row.
func (r *SQLiteDayLogRepo) scanDayLog(row *sql.Row) (*domain.DayLog, error) {
	var d domain.DayLog
	var dateStr string

	err := row.Scan(&d.ID, &dateStr, &d.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("day log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning day log: %w", err)
	}

	if d.Date, err = parseDate(dateStr); err != nil {
		return nil, fmt.Errorf("parsing day log date: %w", err)
	}
	return &d, nil
}
