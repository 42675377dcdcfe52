package pipeline

import (
	"context"
	"fmt"

	"github.com/hr-bulk-import-api/internal/parse"
)

// Classify maps every row and assigns each candidate exactly one status.
//
// Precedence per candidate: error > duplicate > warning > valid. Structural
// and reference problems recorded by the mapper short-circuit the row as an
// error; surviving rows are compared against earlier valid/warning rows in
// file order (first occurrence wins), then against persisted records via
// def.CheckExisting. A collaborator failure aborts the whole preview.
func Classify[E any](ctx context.Context, def Definition[E], rows []parse.Row) (*Preview[E], error) {
	p := &Preview[E]{
		Valid:      []*Classified[E]{},
		Duplicates: []*Classified[E]{},
		Errors:     []*Classified[E]{},
		Warnings:   []*Classified[E]{},
	}

	var kept []*Candidate[E]
	for _, row := range rows {
		c, err := def.Map(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("map %s row at line %d: %w", def.Kind, row.Line, err)
		}

		if len(c.Problems) > 0 {
			p.Errors = append(p.Errors, &Classified[E]{Candidate: c, Status: StatusError, Messages: c.Problems})
			continue
		}

		if prior := firstMatch(def, c, kept); prior != nil {
			msg := fmt.Sprintf("duplicate of line %d in this file", prior.Line)
			p.Duplicates = append(p.Duplicates, &Classified[E]{Candidate: c, Status: StatusDuplicate, Messages: []string{msg}})
			continue
		}

		conflict, err := def.CheckExisting(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("check existing %s at line %d: %w", def.Kind, c.Line, err)
		}
		switch conflict.Kind {
		case ConflictDuplicate:
			p.Duplicates = append(p.Duplicates, &Classified[E]{Candidate: c, Status: StatusDuplicate, Messages: []string{conflict.Message}})
		case ConflictOverlap:
			p.Warnings = append(p.Warnings, &Classified[E]{Candidate: c, Status: StatusWarning, Messages: []string{conflict.Message}})
			kept = append(kept, c)
		default:
			p.Valid = append(p.Valid, &Classified[E]{Candidate: c, Status: StatusValid})
			kept = append(kept, c)
		}
	}

	p.Summary = Summary{
		Valid:      len(p.Valid),
		Duplicates: len(p.Duplicates),
		Errors:     len(p.Errors),
		Warnings:   len(p.Warnings),
	}
	p.Summary.Total = p.Summary.Valid + p.Summary.Duplicates + p.Summary.Errors + p.Summary.Warnings

	return p, nil
}

func firstMatch[E any](def Definition[E], c *Candidate[E], kept []*Candidate[E]) *Candidate[E] {
	for _, k := range kept {
		if def.SameAs(c, k) {
			return k
		}
	}
	return nil
}
