package service

import (
	"context"
	"fmt"

	"github.com/hr-bulk-import-api/internal/parse"
	"github.com/hr-bulk-import-api/internal/pipeline"
	"github.com/hr-bulk-import-api/internal/repository"
	"github.com/rs/zerolog"
)

// importService is the concrete implementation of ImportService
type importService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newImportService creates a new ImportService
func newImportService(repos *repository.Repositories, log zerolog.Logger) *importService {
	return &importService{
		repos: repos,
		log:   log.With().Str("service", "import").Logger(),
	}
}

// Preview parses, maps and classifies the file without persisting anything.
// The returned report is always complete: every row lands in exactly one of
// the four buckets.
func (s *importService) Preview(ctx context.Context, entity, content string) (*PreviewReport, error) {
	switch entity {
	case "leaves":
		return runPreview(ctx, s.leaveDefinition(), content)
	case "milestones":
		return runPreview(ctx, s.milestoneDefinition(), content)
	default:
		return nil, fmt.Errorf("unknown entity type: %s", entity)
	}
}

// Commit re-runs classification over the file and persists the valid and
// warning rows. Duplicate and error rows are never persisted. The per-row
// re-check inside pipeline.Commit guards against persisted state having
// changed since a preview was shown.
func (s *importService) Commit(ctx context.Context, entity, content string) (*CommitReport, error) {
	switch entity {
	case "leaves":
		return runCommit(ctx, s.leaveDefinition(), content, s.log)
	case "milestones":
		return runCommit(ctx, s.milestoneDefinition(), content, s.log)
	default:
		return nil, fmt.Errorf("unknown entity type: %s", entity)
	}
}

func runPreview[E any](ctx context.Context, def pipeline.Definition[E], content string) (*PreviewReport, error) {
	rows := parse.Rows(content)
	preview, err := pipeline.Classify(ctx, def, rows)
	if err != nil {
		return nil, err
	}
	return toReport(def.Kind, preview), nil
}

func runCommit[E any](ctx context.Context, def pipeline.Definition[E], content string, log zerolog.Logger) (*CommitReport, error) {
	rows := parse.Rows(content)
	preview, err := pipeline.Classify(ctx, def, rows)
	if err != nil {
		return nil, err
	}
	outcome := pipeline.Commit(ctx, def, preview.Importable(), log)
	return &CommitReport{
		Entity:  def.Kind,
		Summary: preview.Summary,
		Outcome: outcome,
	}, nil
}

func toReport[E any](entity string, p *pipeline.Preview[E]) *PreviewReport {
	return &PreviewReport{
		Entity:     entity,
		Valid:      toDetails(p.Valid),
		Duplicates: toDetails(p.Duplicates),
		Errors:     toDetails(p.Errors),
		Warnings:   toDetails(p.Warnings),
		Summary:    p.Summary,
	}
}

func toDetails[E any](bucket []*pipeline.Classified[E]) []RowDetail {
	details := make([]RowDetail, 0, len(bucket))
	for _, c := range bucket {
		details = append(details, RowDetail{
			Line:     c.Line,
			Raw:      c.Raw,
			Refs:     c.Refs,
			Status:   c.Status,
			Messages: c.Messages,
		})
	}
	return details
}
