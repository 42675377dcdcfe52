package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hr-bulk-import-api/internal/mocks"
	"github.com/hr-bulk-import-api/internal/models"
	"github.com/hr-bulk-import-api/internal/repository"
	"github.com/hr-bulk-import-api/internal/service"
	"github.com/rs/zerolog"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	users      *mocks.MockUserRepository
	leaveTypes *mocks.MockLeaveTypeRepository
	leaves     *mocks.MockLeaveRepository
	projects   *mocks.MockProjectRepository
	milestones *mocks.MockMilestoneRepository
	services   *service.Services
}

func newFixture() *fixture {
	f := &fixture{
		users:      mocks.NewMockUserRepository(),
		leaveTypes: mocks.NewMockLeaveTypeRepository(),
		leaves:     mocks.NewMockLeaveRepository(),
		projects:   mocks.NewMockProjectRepository(),
		milestones: mocks.NewMockMilestoneRepository(),
	}
	f.users.ByEmail["ann@example.com"] = &models.User{ID: "u1", Email: "ann@example.com", Name: "Ann"}
	f.users.ByEmail["bob@example.com"] = &models.User{ID: "u2", Email: "bob@example.com", Name: "Bob"}
	f.leaveTypes.ByName["Annual Leave"] = &models.LeaveType{ID: "lt1", Name: "Annual Leave", Code: "AL"}
	f.projects.ByName["Atlas"] = &models.Project{ID: "p1", Name: "Atlas"}

	repos := &repository.Repositories{
		User:      f.users,
		LeaveType: f.leaveTypes,
		Leave:     f.leaves,
		Project:   f.projects,
		Milestone: f.milestones,
	}
	f.services = service.NewServices(repos, zerolog.Nop())
	return f
}

func TestLeavePreviewAndCommit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	content := strings.Join([]string{
		"userEmail,leaveTypeName,startDate,endDate",
		"ann@example.com,Annual Leave,2025-06-02,2025-06-06",
		"bob@example.com,Unknown Type,2025-06-09,2025-06-13",
	}, "\n")

	preview, err := f.services.Import.Preview(ctx, "leaves", content)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if s := preview.Summary; s.Valid != 1 || s.Errors != 1 || s.Duplicates != 0 || s.Warnings != 0 {
		t.Fatalf("Summary = %+v, want valid=1 errors=1", s)
	}
	if msg := preview.Errors[0].Messages[0]; !strings.Contains(msg, "leave type not found: Unknown Type") {
		t.Errorf("error message = %q", msg)
	}
	if ref := preview.Valid[0].Refs["user"]; ref.ID != "u1" || ref.Name != "Ann" {
		t.Errorf("resolved user ref = %+v", ref)
	}
	if len(f.leaves.Leaves) != 0 {
		t.Fatal("preview must not persist anything")
	}

	report, err := f.services.Import.Commit(ctx, "leaves", content)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if o := report.Outcome; o.Created != 1 || o.Skipped != 0 || o.Errors != 0 {
		t.Errorf("Outcome = %+v, want created=1", o)
	}
	if len(f.leaves.Leaves) != 1 {
		t.Fatalf("persisted %d leaves, want 1", len(f.leaves.Leaves))
	}
	got := f.leaves.Leaves[0]
	if got.UserID != "u1" || got.LeaveTypeID != "lt1" || !got.StartDate.Equal(day(2025, 6, 2)) {
		t.Errorf("persisted leave = %+v", got)
	}
	if got.ID == "" {
		t.Error("persisted leave has no generated ID")
	}
}

func TestLeaveDuplicateAndOverlapClassification(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.leaves.Leaves = append(f.leaves.Leaves, &models.Leave{
		ID: "l1", UserID: "u1", LeaveTypeID: "lt1",
		StartDate: day(2025, 7, 7), EndDate: day(2025, 7, 11),
	})

	content := strings.Join([]string{
		"userEmail,leaveTypeName,startDate,endDate",
		// identical range -> duplicate, excluded from commit
		"ann@example.com,Annual Leave,2025-07-07,2025-07-11",
		// overlapping range -> warning, still imported
		"ann@example.com,Annual Leave,2025-07-10,2025-07-15",
		// clean range -> valid
		"bob@example.com,Annual Leave,2025-07-07,2025-07-11",
	}, "\n")

	preview, err := f.services.Import.Preview(ctx, "leaves", content)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if s := preview.Summary; s.Valid != 1 || s.Duplicates != 1 || s.Warnings != 1 || s.Errors != 0 {
		t.Fatalf("Summary = %+v, want valid=1 duplicates=1 warnings=1", s)
	}
	if msg := preview.Warnings[0].Messages[0]; !strings.Contains(msg, "overlaps existing leave") {
		t.Errorf("warning message = %q", msg)
	}

	report, err := f.services.Import.Commit(ctx, "leaves", content)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	// valid + warning both imported, duplicate never
	if o := report.Outcome; o.Created != 2 || o.Skipped != 0 || o.Errors != 0 {
		t.Errorf("Outcome = %+v, want created=2", o)
	}
}

func TestLeaveIntraBatchDuplicate(t *testing.T) {
	f := newFixture()

	content := strings.Join([]string{
		"userEmail,leaveTypeName,startDate,endDate",
		"ann@example.com,Annual Leave,2025-08-04,2025-08-08",
		"ann@example.com,Annual Leave,2025-08-06,2025-08-12",
	}, "\n")

	preview, err := f.services.Import.Preview(context.Background(), "leaves", content)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if s := preview.Summary; s.Valid != 1 || s.Duplicates != 1 {
		t.Fatalf("Summary = %+v, want valid=1 duplicates=1", s)
	}
	if preview.Valid[0].Line != 2 {
		t.Errorf("first occurrence should win, valid line = %d", preview.Valid[0].Line)
	}
}

func TestLeaveStructuralErrors(t *testing.T) {
	f := newFixture()

	content := strings.Join([]string{
		"userEmail,leaveTypeName,startDate,endDate",
		"ann@example.com,Annual Leave,06/02/2025,2025-06-06",
		"ann@example.com,Annual Leave,2025-06-10,2025-06-05",
		",Annual Leave,2025-06-20,2025-06-21",
	}, "\n")

	preview, err := f.services.Import.Preview(context.Background(), "leaves", content)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if preview.Summary.Errors != 3 {
		t.Fatalf("Summary = %+v, want 3 errors", preview.Summary)
	}

	wantParts := []string{"invalid date", "is before startDate", "userEmail is required"}
	for i, part := range wantParts {
		found := false
		for _, msg := range preview.Errors[i].Messages {
			if strings.Contains(msg, part) {
				found = true
			}
		}
		if !found {
			t.Errorf("error row %d messages %v missing %q", i, preview.Errors[i].Messages, part)
		}
	}
}

func TestMilestoneImport(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.milestones.Milestones = append(f.milestones.Milestones, &models.Milestone{
		ID: "m0", ProjectID: "p1", Name: "Beta freeze", DueDate: day(2025, 9, 1),
	})

	content := strings.Join([]string{
		"projectName;name;dueDate;description",
		"Atlas;Launch;2025-10-01;Go live",
		"Atlas;Beta freeze;2025-09-15;",
		"Nope;Kickoff;2025-09-01;",
		"Atlas;Launch;2025-12-01;second launch row",
	}, "\n")

	preview, err := f.services.Import.Preview(ctx, "milestones", content)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if s := preview.Summary; s.Valid != 1 || s.Duplicates != 2 || s.Errors != 1 || s.Warnings != 0 {
		t.Fatalf("Summary = %+v, want valid=1 duplicates=2 errors=1", s)
	}

	report, err := f.services.Import.Commit(ctx, "milestones", content)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if o := report.Outcome; o.Created != 1 {
		t.Errorf("Outcome = %+v, want created=1", o)
	}
	if len(f.milestones.Milestones) != 2 {
		t.Errorf("persisted %d milestones, want 2", len(f.milestones.Milestones))
	}
}

func TestUnknownEntity(t *testing.T) {
	f := newFixture()
	if _, err := f.services.Import.Preview(context.Background(), "telework", "a,b\n1,2"); err == nil {
		t.Error("expected error for unknown entity")
	}
	if _, err := f.services.Import.Commit(context.Background(), "telework", "a,b\n1,2"); err == nil {
		t.Error("expected error for unknown entity")
	}
}

func TestPreviewAbortsWhenLookupFails(t *testing.T) {
	f := newFixture()
	f.users.FindErr = errors.New("connection refused")

	content := "userEmail,leaveTypeName,startDate,endDate\nann@example.com,Annual Leave,2025-06-02,2025-06-06"
	if _, err := f.services.Import.Preview(context.Background(), "leaves", content); err == nil {
		t.Error("expected preview to fail when the user lookup is unreachable")
	}
}

func TestCommitPartialFailureContinues(t *testing.T) {
	f := newFixture()
	f.leaves.InsertErr = errors.New("insert blew up")

	content := strings.Join([]string{
		"userEmail,leaveTypeName,startDate,endDate",
		"ann@example.com,Annual Leave,2025-06-02,2025-06-06",
		"bob@example.com,Annual Leave,2025-06-02,2025-06-06",
	}, "\n")

	report, err := f.services.Import.Commit(context.Background(), "leaves", content)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if o := report.Outcome; o.Errors != 2 || o.Created != 0 {
		t.Errorf("Outcome = %+v, want errors=2", o)
	}
	if f.leaves.InsertCalls != 2 {
		t.Errorf("InsertCalls = %d, one row's failure must not abort the batch", f.leaves.InsertCalls)
	}
	if len(report.Outcome.ErrorDetails) != 2 {
		t.Errorf("ErrorDetails = %v, want per-row details", report.Outcome.ErrorDetails)
	}
}

func TestStatsCounts(t *testing.T) {
	f := newFixture()
	counts, err := f.services.Stats.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts["users"] != 2 || counts["leaves"] != 0 || counts["milestones"] != 0 {
		t.Errorf("counts = %v", counts)
	}
}
