package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hr-bulk-import-api/internal/database"
	"github.com/hr-bulk-import-api/internal/models"
)

// milestoneRepo is the concrete implementation of MilestoneRepository
type milestoneRepo struct {
	db *database.DB
}

// NewMilestoneRepo creates a new milestone repository
func NewMilestoneRepo(db *database.DB) MilestoneRepository {
	return &milestoneRepo{db: db}
}

// FindByProjectAndName retrieves a milestone by project and exact name, nil when absent
func (r *milestoneRepo) FindByProjectAndName(ctx context.Context, projectID, name string) (*models.Milestone, error) {
	query := `
		SELECT id, project_id, name, due_date, description, created_at
		FROM milestones
		WHERE project_id = $1 AND name = $2
	`
	var m models.Milestone
	err := r.db.QueryRowContext(ctx, query, projectID, name).Scan(
		&m.ID, &m.ProjectID, &m.Name, &m.DueDate, &m.Description, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Insert persists a new milestone
func (r *milestoneRepo) Insert(ctx context.Context, milestone *models.Milestone) error {
	query := `
		INSERT INTO milestones (id, project_id, name, due_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		milestone.ID, milestone.ProjectID, milestone.Name,
		milestone.DueDate, milestone.Description, time.Now(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("milestone %q already exists in project %s", milestone.Name, milestone.ProjectID)
	}
	return err
}

// Count returns the total number of milestones
func (r *milestoneRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM milestones").Scan(&count)
	return count, err
}
