package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

const persistTimeout = 5 * time.Second

// Persist subscribes the storage to the store: every non-empty session is
// saved, an empty session clears the entry. Storage failures are logged and
// do not roll back the in-memory transition.
func Persist(store *Store, storage Storage) {
	store.Subscribe(func(sess domain.Session) {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if sess.IsEmpty() {
			if err := storage.Clear(ctx); err != nil {
				log.Printf("session clear error: %v", err)
			}
			return
		}
		if err := storage.Save(ctx, sess); err != nil {
			log.Printf("session save error: %v", err)
		}
	})
}

// Restore loads the persisted session into the store at startup. A missing
// or unreadable entry yields the logged-out session. Call before Persist so
// the restore itself is not written back.
func Restore(ctx context.Context, store *Store, storage Storage) domain.Session {
	sess, err := storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			log.Printf("session restore error: %v", err)
		}
		return domain.Session{}
	}
	store.Set(sess)
	return sess
}
