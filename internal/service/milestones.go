package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hr-bulk-import-api/internal/models"
	"github.com/hr-bulk-import-api/internal/parse"
	"github.com/hr-bulk-import-api/internal/pipeline"
	"github.com/hr-bulk-import-api/internal/validation"
)

// Milestone import columns: projectName, name, dueDate and an optional
// description. Duplicate key is project + name, both in-file and against
// persisted milestones; there is no warning variant.
func (s *importService) milestoneDefinition() pipeline.Definition[models.Milestone] {
	return pipeline.Definition[models.Milestone]{
		Kind:          "milestone",
		Map:           s.mapMilestone,
		SameAs:        milestonesCollide,
		CheckExisting: s.checkExistingMilestone,
		Insert:        s.insertMilestone,
	}
}

func (s *importService) mapMilestone(ctx context.Context, row parse.Row) (*pipeline.Candidate[models.Milestone], error) {
	fields := validation.NewFieldSet(row.Fields)
	projectName := fields.Required("projectName")
	name := fields.Required("name")
	due, _ := fields.Date("dueDate", true)
	description := fields.Optional("description")

	c := &pipeline.Candidate[models.Milestone]{
		Line: row.Line,
		Raw:  row.Fields,
		Refs: map[string]pipeline.Ref{},
	}

	if projectName != "" {
		project, err := s.repos.Project.FindByName(ctx, projectName)
		if err != nil {
			return nil, err
		}
		if project == nil {
			fields.Problemf("project not found: %s", projectName)
		} else {
			c.Refs["project"] = pipeline.Ref{ID: project.ID, Name: project.Name}
		}
	}

	c.Problems = fields.Problems()
	if fields.Ok() {
		c.Data = &models.Milestone{
			ProjectID:   c.Refs["project"].ID,
			Name:        name,
			DueDate:     due,
			Description: description,
		}
	}
	return c, nil
}

func milestonesCollide(a, b *pipeline.Candidate[models.Milestone]) bool {
	return a.Data.ProjectID == b.Data.ProjectID && a.Data.Name == b.Data.Name
}

func (s *importService) checkExistingMilestone(ctx context.Context, c *pipeline.Candidate[models.Milestone]) (pipeline.Conflict, error) {
	existing, err := s.repos.Milestone.FindByProjectAndName(ctx, c.Data.ProjectID, c.Data.Name)
	if err != nil {
		return pipeline.Conflict{}, err
	}
	if existing == nil {
		return pipeline.Conflict{Kind: pipeline.ConflictNone}, nil
	}
	return pipeline.Conflict{
		Kind:    pipeline.ConflictDuplicate,
		Message: "milestone already exists in this project",
	}, nil
}

func (s *importService) insertMilestone(ctx context.Context, c *pipeline.Candidate[models.Milestone]) error {
	m := *c.Data
	m.ID = uuid.New().String()
	return s.repos.Milestone.Insert(ctx, &m)
}
