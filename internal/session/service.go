package session

import (
	"context"
	"errors"
	"time"

	"backend-surfbuddy/internal/observability"
	"backend-surfbuddy/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPhotoLimit is returned when a session already holds MaxPhotos references.
var ErrPhotoLimit = errors.New("photo limit reached")

type Service struct {
	store *store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log, now: time.Now}
}

// Create assigns identity and a creation timestamp, appends the record to the
// collection and persists it. The stored record is returned even when the
// write fails; the error tells the caller the data may not have been saved.
func (s *Service) Create(ctx context.Context, input Session) (Session, error) {
	input.ID = uuid.NewString()
	input.CreatedAt = s.now().UTC().Format(time.RFC3339)
	if input.Photos == nil {
		input.Photos = []string{}
	}

	sessions := store.Read[Session](ctx, s.store, store.SessionsKey)
	sessions = append(sessions, input)

	err := store.Write(ctx, s.store, store.SessionsKey, sessions)
	if err != nil {
		s.log.Error("session accepted but not persisted", zap.String("id", input.ID), zap.Error(err))
	}
	observability.RecordSessionCreated()
	return input, err
}

// List returns the full collection in stored (insertion) order. Sorting for
// display is a presentation concern.
func (s *Service) List(ctx context.Context) []Session {
	return store.Read[Session](ctx, s.store, store.SessionsKey)
}

// Update shallow-merges the non-nil patch fields over the record with the
// given id and persists the collection. A missing id leaves the collection
// untouched and reports found=false.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Session, bool, error) {
	sessions := store.Read[Session](ctx, s.store, store.SessionsKey)
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		sessions[i] = applyPatch(sessions[i], patch)
		err := store.Write(ctx, s.store, store.SessionsKey, sessions)
		if err != nil {
			s.log.Error("session update not persisted", zap.String("id", id), zap.Error(err))
		}
		return sessions[i], true, err
	}
	return Session{}, false, nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, so the call is idempotent. Remote photo objects are not cleaned up
// here; orphaned uploads are a known gap.
func (s *Service) Delete(ctx context.Context, id string) error {
	sessions := store.Read[Session](ctx, s.store, store.SessionsKey)
	kept := sessions[:0]
	for _, sess := range sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	if len(kept) == len(sessions) {
		return nil
	}
	err := store.Write(ctx, s.store, store.SessionsKey, kept)
	if err != nil {
		s.log.Error("session delete not persisted", zap.String("id", id), zap.Error(err))
	}
	return err
}

// AttachPhoto appends a photo reference URL to the session with the given id.
func (s *Service) AttachPhoto(ctx context.Context, id, url string) (Session, bool, error) {
	sessions := store.Read[Session](ctx, s.store, store.SessionsKey)
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		if len(sessions[i].Photos) >= MaxPhotos {
			return sessions[i], true, ErrPhotoLimit
		}
		sessions[i].Photos = append(sessions[i].Photos, url)
		err := store.Write(ctx, s.store, store.SessionsKey, sessions)
		return sessions[i], true, err
	}
	return Session{}, false, nil
}

// DetachPhoto removes a photo reference URL from the session with the given
// id. Unknown urls are ignored.
func (s *Service) DetachPhoto(ctx context.Context, id, url string) (Session, bool, error) {
	sessions := store.Read[Session](ctx, s.store, store.SessionsKey)
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		kept := make([]string, 0, len(sessions[i].Photos))
		for _, p := range sessions[i].Photos {
			if p != url {
				kept = append(kept, p)
			}
		}
		sessions[i].Photos = kept
		err := store.Write(ctx, s.store, store.SessionsKey, sessions)
		return sessions[i], true, err
	}
	return Session{}, false, nil
}

func applyPatch(cur Session, patch Patch) Session {
	if patch.Date != nil {
		cur.Date = *patch.Date
	}
	if patch.Location != nil {
		cur.Location = *patch.Location
	}
	if patch.WaveHeight != nil {
		cur.WaveHeight = *patch.WaveHeight
	}
	if patch.Duration != nil {
		cur.Duration = *patch.Duration
	}
	if patch.Board != nil {
		cur.Board = *patch.Board
	}
	if patch.Rating != nil {
		cur.Rating = *patch.Rating
	}
	if patch.Conditions != nil {
		cur.Conditions = *patch.Conditions
	}
	if patch.Crowd != nil {
		cur.Crowd = *patch.Crowd
	}
	if patch.Notes != nil {
		cur.Notes = *patch.Notes
	}
	if patch.Photos != nil {
		cur.Photos = patch.Photos
	}
	return cur
}
