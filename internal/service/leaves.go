package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hr-bulk-import-api/internal/models"
	"github.com/hr-bulk-import-api/internal/parse"
	"github.com/hr-bulk-import-api/internal/pipeline"
	"github.com/hr-bulk-import-api/internal/validation"
)

// Leave import columns: userEmail, leaveTypeName, startDate, endDate and an
// optional reason. Lookups are exact-match and case-sensitive.
//
// Conflict rules: within one file, two rows for the same user with
// overlapping ranges collide (first occurrence wins). Against persisted
// leaves, an identical range is a duplicate and is not imported; a merely
// overlapping range is a warning and is still imported.
func (s *importService) leaveDefinition() pipeline.Definition[models.Leave] {
	return pipeline.Definition[models.Leave]{
		Kind:          "leave",
		Map:           s.mapLeave,
		SameAs:        leavesCollide,
		CheckExisting: s.checkExistingLeave,
		Insert:        s.insertLeave,
	}
}

func (s *importService) mapLeave(ctx context.Context, row parse.Row) (*pipeline.Candidate[models.Leave], error) {
	fields := validation.NewFieldSet(row.Fields)
	email := fields.Required("userEmail")
	typeName := fields.Required("leaveTypeName")
	start, startOK := fields.Date("startDate", true)
	end, endOK := fields.Date("endDate", true)
	reason := fields.Optional("reason")

	if startOK && endOK && end.Before(start) {
		fields.Problemf("endDate %s is before startDate %s",
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	c := &pipeline.Candidate[models.Leave]{
		Line: row.Line,
		Raw:  row.Fields,
		Refs: map[string]pipeline.Ref{},
	}

	if email != "" {
		user, err := s.repos.User.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			fields.Problemf("user not found: %s", email)
		} else {
			c.Refs["user"] = pipeline.Ref{ID: user.ID, Name: user.Name}
		}
	}
	if typeName != "" {
		lt, err := s.repos.LeaveType.FindByName(ctx, typeName)
		if err != nil {
			return nil, err
		}
		if lt == nil {
			fields.Problemf("leave type not found: %s", typeName)
		} else {
			c.Refs["leaveType"] = pipeline.Ref{ID: lt.ID, Name: lt.Name}
		}
	}

	c.Problems = fields.Problems()
	if fields.Ok() {
		c.Data = &models.Leave{
			UserID:      c.Refs["user"].ID,
			LeaveTypeID: c.Refs["leaveType"].ID,
			StartDate:   start,
			EndDate:     end,
			Reason:      reason,
		}
	}
	return c, nil
}

// leavesCollide reports whether two candidates are for the same user with
// overlapping date ranges.
func leavesCollide(a, b *pipeline.Candidate[models.Leave]) bool {
	return a.Data.UserID == b.Data.UserID &&
		rangesOverlap(a.Data.StartDate, a.Data.EndDate, b.Data.StartDate, b.Data.EndDate)
}

func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

func (s *importService) checkExistingLeave(ctx context.Context, c *pipeline.Candidate[models.Leave]) (pipeline.Conflict, error) {
	existing, err := s.repos.Leave.FindOverlapping(ctx, c.Data.UserID, c.Data.StartDate, c.Data.EndDate)
	if err != nil {
		return pipeline.Conflict{}, err
	}
	if existing == nil {
		return pipeline.Conflict{Kind: pipeline.ConflictNone}, nil
	}
	if existing.StartDate.Equal(c.Data.StartDate) && existing.EndDate.Equal(c.Data.EndDate) {
		return pipeline.Conflict{
			Kind:    pipeline.ConflictDuplicate,
			Message: "identical leave already exists",
		}, nil
	}
	return pipeline.Conflict{
		Kind: pipeline.ConflictOverlap,
		Message: "overlaps existing leave from " +
			existing.StartDate.Format(time.DateOnly) + " to " + existing.EndDate.Format(time.DateOnly),
	}, nil
}

func (s *importService) insertLeave(ctx context.Context, c *pipeline.Candidate[models.Leave]) error {
	leave := *c.Data
	leave.ID = uuid.New().String()
	return s.repos.Leave.Insert(ctx, &leave)
}
