package repository

import (
	"context"
	"database/sql"

	"github.com/hr-bulk-import-api/internal/database"
	"github.com/hr-bulk-import-api/internal/models"
)

// projectRepo is the concrete implementation of ProjectRepository
type projectRepo struct {
	db *database.DB
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *database.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// FindByName retrieves a project by exact name match, nil when absent
func (r *projectRepo) FindByName(ctx context.Context, name string) (*models.Project, error) {
	query := `SELECT id, name FROM projects WHERE name = $1`

	var project models.Project
	err := r.db.QueryRowContext(ctx, query, name).Scan(&project.ID, &project.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}
