// Package sweep drives one full export: users, recordings, downloads, ledger.
package sweep

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/np-at/zoomdl/internal/download"
	"github.com/np-at/zoomdl/internal/ledger"
	"github.com/np-at/zoomdl/internal/zoomapi"
)

// Runner orchestrates the sweep. Everything runs on the calling goroutine;
// the first unrecovered error aborts the whole run.
type Runner struct {
	api    *zoomapi.Client
	ledger *ledger.Ledger
	engine *download.Engine
	log    zerolog.Logger
}

// NewRunner wires a Runner from its collaborators.
func NewRunner(api *zoomapi.Client, led *ledger.Ledger, engine *download.Engine, log zerolog.Logger) *Runner {
	return &Runner{api: api, ledger: led, engine: engine, log: log}
}

// Run walks every user, enumerates their recordings, downloads any recording
// not yet in the ledger, and commits each recording once at least one of its
// files has landed (or was already on disk).
func (r *Runner) Run(ctx context.Context) error {
	users, err := r.api.ListUsers(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		r.log.Info().Str("email", u.Email).Msg("getting recording list")
		recs, err := r.api.ListRecordings(ctx, u.ID)
		if err != nil {
			return err
		}
		total := len(recs)
		r.log.Info().Int("count", total).Str("email", u.Email).Msg("recordings found")

		for i, rec := range recs {
			if r.ledger.Contains(rec.UUID) {
				r.log.Info().Str("uuid", rec.UUID).Msg("skipping already downloaded meeting")
				continue
			}

			success := false
			for _, f := range rec.Files {
				r.log.Info().
					Int("n", i+1).Int("of", total).
					Str("uuid", rec.UUID).Str("type", f.FileType).
					Msg("downloading")
				ok, err := r.engine.Fetch(ctx, u.Email, rec, f)
				if err != nil {
					return err
				}
				success = success || ok
			}

			// One landed file is enough to mark the meeting processed.
			if success {
				if err := r.ledger.Commit(rec.UUID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
