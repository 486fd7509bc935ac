package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/showcase/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/showcase/internal/logging"
)

const persistTimeout = 5 * time.Second

// Restore loads a previously saved session into store. A missing record
// leaves the store untouched.
func Restore(ctx context.Context, store *Store, repo sessions.Repository) error {
	rec, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	if rec == nil || rec.Token == "" {
		return nil
	}
	store.SetAuth(rec.User, rec.Token)
	return nil
}

// Persist mirrors every session change into repo until the returned function
// is called. Write failures are logged; the in-memory session stays
// authoritative.
func Persist(store *Store, repo sessions.Repository, logger logging.Logger) func() {
	return store.Subscribe(func(st State) {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if !st.Authenticated() {
			if err := repo.Clear(ctx); err != nil {
				logger.Warn(ctx, "failed to clear stored session", "err", err)
			}
			return
		}

		err := repo.Save(ctx, sessions.Record{Token: st.Token, User: *st.User})
		if err != nil {
			logger.Warn(ctx, "failed to store session", "err", err)
		}
	})
}
