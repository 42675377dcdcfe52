package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hr-bulk-import-api/internal/database"
	"github.com/hr-bulk-import-api/internal/models"
	"github.com/lib/pq"
)

// leaveRepo is the concrete implementation of LeaveRepository
type leaveRepo struct {
	db *database.DB
}

// NewLeaveRepo creates a new leave repository
func NewLeaveRepo(db *database.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

// FindOverlapping returns the earliest persisted leave for the user whose
// range intersects [start, end], nil when none does
func (r *leaveRepo) FindOverlapping(ctx context.Context, userID string, start, end time.Time) (*models.Leave, error) {
	query := `
		SELECT id, user_id, leave_type_id, start_date, end_date, reason, created_at
		FROM leaves
		WHERE user_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
		LIMIT 1
	`
	var leave models.Leave
	err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(
		&leave.ID, &leave.UserID, &leave.LeaveTypeID,
		&leave.StartDate, &leave.EndDate, &leave.Reason, &leave.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &leave, nil
}

// Insert persists a new leave
func (r *leaveRepo) Insert(ctx context.Context, leave *models.Leave) error {
	query := `
		INSERT INTO leaves (id, user_id, leave_type_id, start_date, end_date, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		leave.ID, leave.UserID, leave.LeaveTypeID,
		leave.StartDate, leave.EndDate, leave.Reason, time.Now(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("leave already exists for user %s from %s to %s",
			leave.UserID, leave.StartDate.Format(time.DateOnly), leave.EndDate.Format(time.DateOnly))
	}
	return err
}

// Count returns the total number of leaves
func (r *leaveRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM leaves").Scan(&count)
	return count, err
}

// isUniqueViolation reports a Postgres unique constraint failure. The unique
// index is the storage-level backstop for the preview-to-commit race window.
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
