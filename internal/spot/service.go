package spot

import (
	"context"
	"fmt"
	"time"

	"backend-surfbuddy/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	store *store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log, now: time.Now}
}

// Add saves a favorite spot. Identity is derived from the coordinates, so
// adding the same location twice is a no-op that returns the existing record.
func (s *Service) Add(ctx context.Context, input Spot) (Spot, error) {
	input.ID = SpotID(input.Lat, input.Lng)
	if input.Name == "" {
		input.Name = fmt.Sprintf("Surf Spot (%.4f, %.4f)", input.Lat, input.Lng)
	}

	spots := store.Read[Spot](ctx, s.store, store.FavoriteSpotsKey)
	for _, existing := range spots {
		if existing.ID == input.ID {
			return existing, nil
		}
	}

	input.CreatedAt = s.now().UTC().Format(time.RFC3339)
	spots = append(spots, input)
	err := store.Write(ctx, s.store, store.FavoriteSpotsKey, spots)
	if err != nil {
		s.log.Error("favorite spot not persisted", zap.String("id", input.ID), zap.Error(err))
	}
	return input, err
}

// List returns the full collection of favorites.
func (s *Service) List(ctx context.Context) []Spot {
	return store.Read[Spot](ctx, s.store, store.FavoriteSpotsKey)
}

// Remove deletes the favorite with the given id; removing an absent id is a
// no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	spots := store.Read[Spot](ctx, s.store, store.FavoriteSpotsKey)
	kept := spots[:0]
	for _, sp := range spots {
		if sp.ID != id {
			kept = append(kept, sp)
		}
	}
	if len(kept) == len(spots) {
		return nil
	}
	err := store.Write(ctx, s.store, store.FavoriteSpotsKey, kept)
	if err != nil {
		s.log.Error("favorite removal not persisted", zap.String("id", id), zap.Error(err))
	}
	return err
}
