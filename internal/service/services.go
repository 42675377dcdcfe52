package service

import (
	"context"

	"github.com/hr-bulk-import-api/internal/pipeline"
	"github.com/hr-bulk-import-api/internal/repository"
	"github.com/rs/zerolog"
)

// ValidEntities lists the entity kinds the import pipeline supports.
var ValidEntities = map[string]bool{
	"leaves":     true,
	"milestones": true,
}

// RowDetail is the per-row view of a classified candidate exposed to
// API clients.
type RowDetail struct {
	Line     int                     `json:"line"`
	Raw      map[string]string       `json:"raw"`
	Refs     map[string]pipeline.Ref `json:"refs,omitempty"`
	Status   pipeline.Status         `json:"status"`
	Messages []string                `json:"messages,omitempty"`
}

// PreviewReport is the complete classification of one uploaded file.
type PreviewReport struct {
	Entity     string           `json:"entity"`
	Valid      []RowDetail      `json:"valid"`
	Duplicates []RowDetail      `json:"duplicates"`
	Errors     []RowDetail      `json:"errors"`
	Warnings   []RowDetail      `json:"warnings"`
	Summary    pipeline.Summary `json:"summary"`
}

// CommitReport is the result of committing one uploaded file.
type CommitReport struct {
	Entity  string            `json:"entity"`
	Summary pipeline.Summary  `json:"summary"`
	Outcome *pipeline.Outcome `json:"outcome"`
}

// ImportService defines the interface for CSV bulk import operations
type ImportService interface {
	Preview(ctx context.Context, entity, content string) (*PreviewReport, error)
	Commit(ctx context.Context, entity, content string) (*CommitReport, error)
}

// StatsService exposes row counts for the metrics endpoint
type StatsService interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Import ImportService
	Stats  StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Import: newImportService(repos, log),
		Stats:  newStatsService(repos),
	}
}
