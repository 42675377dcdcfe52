// Package pipeline implements the generic CSV bulk-import pipeline:
// map rows to typed candidates, classify each into exactly one of
// valid/warning/duplicate/error against in-file and persisted state, and
// commit the importable set with per-row accounting.
package pipeline

import (
	"context"

	"github.com/hr-bulk-import-api/internal/parse"
)

// Status classifies one candidate. Exactly one status per candidate.
type Status string

const (
	StatusValid     Status = "valid"
	StatusWarning   Status = "warning"
	StatusDuplicate Status = "duplicate"
	StatusError     Status = "error"
)

// Ref is a resolved reference to an externally-owned entity.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Candidate is one row's data after mapping and reference resolution,
// prior to classification. Not mutated after the mapper returns it.
type Candidate[E any] struct {
	Line     int               `json:"line"`
	Raw      map[string]string `json:"raw"`
	Refs     map[string]Ref    `json:"refs,omitempty"`
	Data     *E                `json:"data,omitempty"`
	Problems []string          `json:"-"`
}

// Classified pairs a candidate with its final status and messages.
type Classified[E any] struct {
	*Candidate[E]
	Status   Status   `json:"status"`
	Messages []string `json:"messages,omitempty"`
}

// Summary aggregates classification counts. Total is always the sum of the
// four buckets; every candidate is counted exactly once.
type Summary struct {
	Total      int `json:"total"`
	Valid      int `json:"valid"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
}

// Preview is the complete classification of one parsed file.
type Preview[E any] struct {
	Valid      []*Classified[E] `json:"valid"`
	Duplicates []*Classified[E] `json:"duplicates"`
	Errors     []*Classified[E] `json:"errors"`
	Warnings   []*Classified[E] `json:"warnings"`
	Summary    Summary          `json:"summary"`
}

// Importable returns the candidates that a commit would persist, in file
// order: the union of valid and warning rows.
func (p *Preview[E]) Importable() []*Candidate[E] {
	out := make([]*Candidate[E], 0, len(p.Valid)+len(p.Warnings))
	for _, c := range p.Valid {
		out = append(out, c.Candidate)
	}
	for _, c := range p.Warnings {
		out = append(out, c.Candidate)
	}
	return out
}

// Outcome reports what a commit actually did. Created+Skipped+Errors always
// equals the number of candidates passed to Commit.
type Outcome struct {
	Created      int      `json:"created"`
	Skipped      int      `json:"skipped"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details,omitempty"`
}

// ConflictKind is the result of probing persisted state for one candidate.
type ConflictKind int

const (
	// ConflictNone means no persisted record matches the candidate.
	ConflictNone ConflictKind = iota
	// ConflictDuplicate means an identical record already exists; the
	// candidate is excluded from import.
	ConflictDuplicate
	// ConflictOverlap means a related-but-not-identical record exists; the
	// candidate is imported with a warning.
	ConflictOverlap
)

// Conflict carries the probe result and a human-readable explanation.
type Conflict struct {
	Kind    ConflictKind
	Message string
}

// Definition supplies the entity-specific hooks the generic pipeline is
// instantiated with. Map must be total for row data: bad or unresolvable
// values are recorded in Candidate.Problems, never returned as an error.
// The error returns are reserved for collaborator failures (lookups or
// storage being unreachable).
type Definition[E any] struct {
	// Kind names the entity for log fields and messages, e.g. "leave".
	Kind string

	// Map builds one candidate from one raw row.
	Map func(ctx context.Context, row parse.Row) (*Candidate[E], error)

	// SameAs reports whether two structurally-valid candidates collide
	// within the same file (intra-batch duplicate predicate).
	SameAs func(a, b *Candidate[E]) bool

	// CheckExisting probes already-persisted records for a duplicate or
	// overlap. Called during classification and again per row at commit
	// time, since persisted state may have changed in between.
	CheckExisting func(ctx context.Context, c *Candidate[E]) (Conflict, error)

	// Insert persists one candidate.
	Insert func(ctx context.Context, c *Candidate[E]) error
}
