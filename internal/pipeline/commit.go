package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Commit persists the given candidates (the valid+warning set of a preview).
//
// Each row is re-checked against persisted state immediately before insert:
// previews can go stale, so a newly-appeared duplicate is skipped rather
// than inserted twice. A failing insert is recorded and the batch continues;
// one row never aborts the others, and rows created before a failure are not
// rolled back. Callers needing all-or-nothing must wrap the batch in their
// own transaction.
func Commit[E any](ctx context.Context, def Definition[E], candidates []*Candidate[E], log zerolog.Logger) *Outcome {
	out := &Outcome{}

	for _, c := range candidates {
		conflict, err := def.CheckExisting(ctx, c)
		if err != nil {
			out.Errors++
			out.ErrorDetails = append(out.ErrorDetails, fmt.Sprintf("line %d: duplicate re-check failed: %v", c.Line, err))
			log.Error().Err(err).Str("entity", def.Kind).Int("line", c.Line).Msg("Duplicate re-check failed")
			continue
		}
		if conflict.Kind == ConflictDuplicate {
			out.Skipped++
			log.Debug().Str("entity", def.Kind).Int("line", c.Line).Msg("Skipped duplicate at commit time")
			continue
		}

		if err := def.Insert(ctx, c); err != nil {
			out.Errors++
			out.ErrorDetails = append(out.ErrorDetails, fmt.Sprintf("line %d: %v", c.Line, err))
			log.Error().Err(err).Str("entity", def.Kind).Int("line", c.Line).Msg("Insert failed")
			continue
		}
		out.Created++
	}

	log.Info().
		Str("entity", def.Kind).
		Int("created", out.Created).
		Int("skipped", out.Skipped).
		Int("errors", out.Errors).
		Msg("Import committed")

	return out
}
