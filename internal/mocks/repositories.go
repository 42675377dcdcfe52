package mocks

import (
	"context"
	"time"

	"github.com/hr-bulk-import-api/internal/models"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	ByEmail map[string]*models.User
	FindErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{ByEmail: make(map[string]*models.User)}
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.ByEmail[email], nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.ByEmail), nil
}

// MockLeaveTypeRepository is a mock implementation of repository.LeaveTypeRepository
type MockLeaveTypeRepository struct {
	ByName  map[string]*models.LeaveType
	FindErr error
}

func NewMockLeaveTypeRepository() *MockLeaveTypeRepository {
	return &MockLeaveTypeRepository{ByName: make(map[string]*models.LeaveType)}
}

func (m *MockLeaveTypeRepository) FindByName(ctx context.Context, name string) (*models.LeaveType, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.ByName[name], nil
}

// MockLeaveRepository is a mock implementation of repository.LeaveRepository
type MockLeaveRepository struct {
	Leaves      []*models.Leave
	InsertErr   error
	InsertCalls int
}

func NewMockLeaveRepository() *MockLeaveRepository {
	return &MockLeaveRepository{}
}

func (m *MockLeaveRepository) FindOverlapping(ctx context.Context, userID string, start, end time.Time) (*models.Leave, error) {
	for _, l := range m.Leaves {
		if l.UserID == userID && !l.StartDate.After(end) && !l.EndDate.Before(start) {
			return l, nil
		}
	}
	return nil, nil
}

func (m *MockLeaveRepository) Insert(ctx context.Context, leave *models.Leave) error {
	m.InsertCalls++
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Leaves = append(m.Leaves, leave)
	return nil
}

func (m *MockLeaveRepository) Count(ctx context.Context) (int, error) {
	return len(m.Leaves), nil
}

// MockProjectRepository is a mock implementation of repository.ProjectRepository
type MockProjectRepository struct {
	ByName map[string]*models.Project
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{ByName: make(map[string]*models.Project)}
}

func (m *MockProjectRepository) FindByName(ctx context.Context, name string) (*models.Project, error) {
	return m.ByName[name], nil
}

// MockMilestoneRepository is a mock implementation of repository.MilestoneRepository
type MockMilestoneRepository struct {
	Milestones  []*models.Milestone
	InsertErr   error
	InsertCalls int
}

func NewMockMilestoneRepository() *MockMilestoneRepository {
	return &MockMilestoneRepository{}
}

func (m *MockMilestoneRepository) FindByProjectAndName(ctx context.Context, projectID, name string) (*models.Milestone, error) {
	for _, ms := range m.Milestones {
		if ms.ProjectID == projectID && ms.Name == name {
			return ms, nil
		}
	}
	return nil, nil
}

func (m *MockMilestoneRepository) Insert(ctx context.Context, milestone *models.Milestone) error {
	m.InsertCalls++
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Milestones = append(m.Milestones, milestone)
	return nil
}

func (m *MockMilestoneRepository) Count(ctx context.Context) (int, error) {
	return len(m.Milestones), nil
}
