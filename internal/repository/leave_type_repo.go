package repository

import (
	"context"
	"database/sql"

	"github.com/hr-bulk-import-api/internal/database"
	"github.com/hr-bulk-import-api/internal/models"
)

// leaveTypeRepo is the concrete implementation of LeaveTypeRepository
type leaveTypeRepo struct {
	db *database.DB
}

// NewLeaveTypeRepo creates a new leave type repository
func NewLeaveTypeRepo(db *database.DB) LeaveTypeRepository {
	return &leaveTypeRepo{db: db}
}

// FindByName retrieves a leave type by exact name match, nil when absent
func (r *leaveTypeRepo) FindByName(ctx context.Context, name string) (*models.LeaveType, error) {
	query := `SELECT id, name, code FROM leave_types WHERE name = $1`

	var lt models.LeaveType
	err := r.db.QueryRowContext(ctx, query, name).Scan(&lt.ID, &lt.Name, &lt.Code)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &lt, nil
}
