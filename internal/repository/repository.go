package repository

import (
	"context"
	"time"

	"github.com/hr-bulk-import-api/internal/database"
	"github.com/hr-bulk-import-api/internal/models"
)

// UserRepository defines read access to users for reference resolution.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// LeaveTypeRepository defines read access to leave types.
type LeaveTypeRepository interface {
	FindByName(ctx context.Context, name string) (*models.LeaveType, error)
}

// LeaveRepository defines leave persistence for the import pipeline.
type LeaveRepository interface {
	// FindOverlapping returns the first persisted leave for the user whose
	// date range intersects [start, end], or nil when none does.
	FindOverlapping(ctx context.Context, userID string, start, end time.Time) (*models.Leave, error)
	Insert(ctx context.Context, leave *models.Leave) error
	Count(ctx context.Context) (int, error)
}

// ProjectRepository defines read access to projects.
type ProjectRepository interface {
	FindByName(ctx context.Context, name string) (*models.Project, error)
}

// MilestoneRepository defines milestone persistence for the import pipeline.
type MilestoneRepository interface {
	FindByProjectAndName(ctx context.Context, projectID, name string) (*models.Milestone, error)
	Insert(ctx context.Context, milestone *models.Milestone) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces.
type Repositories struct {
	User      UserRepository
	LeaveType LeaveTypeRepository
	Leave     LeaveRepository
	Project   ProjectRepository
	Milestone MilestoneRepository
}

// New creates all repositories with the given database connection.
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:      NewUserRepo(db),
		LeaveType: NewLeaveTypeRepo(db),
		Leave:     NewLeaveRepo(db),
		Project:   NewProjectRepo(db),
		Milestone: NewMilestoneRepo(db),
	}
}
