// Package roster loads member snapshots for the engine from external stores.
package roster

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/model"
)

var ErrUnavailable = errors.New("roster unavailable")

// Source returns a complete roster snapshot. Every call returns a fresh slice
// the caller owns.
type Source interface {
	Members(ctx context.Context) ([]model.Member, error)
}

// document is the on-the-wire shape shared by the file and HTTP sources.
type document struct {
	Members []model.Member `json:"members" yaml:"members"`
}

// sanitize drops records without an id and logs dates that failed to parse.
// Malformed dates stay on the member; the engine treats them as non-matching.
func sanitize(members []model.Member, logger zerolog.Logger) []model.Member {
	out := make([]model.Member, 0, len(members))
	for _, m := range members {
		if m.ID == "" {
			logger.Warn().Str("name", m.Name).Msg("skipping member without id")
			continue
		}
		for _, f := range []struct {
			name string
			date calendar.Date
		}{
			{"lastWorkStartDate", m.LastWorkStartDate},
			{"lastWorkEndDate", m.LastWorkEndDate},
			{"contractEndDate", m.ContractEndDate},
			{"firstCounselingDate", m.FirstCounselingDate},
		} {
			if f.date.IsMalformed() {
				logger.Warn().Str("member_id", m.ID).Str("field", f.name).Msg("malformed date")
			}
		}
		out = append(out, m)
	}
	return out
}
