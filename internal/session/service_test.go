package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"backend-surfbuddy/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	return NewService(store.New(client, zap.NewNop()), zap.NewNop()), srv
}

func TestCreateAssignsIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created, err := svc.Create(ctx, Session{Date: "2024-03-01", Location: "Uluwatu", Rating: 4})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID == "" || created.CreatedAt == "" {
			t.Fatalf("expected id and createdAt to be assigned")
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %q", created.ID)
		}
		seen[created.ID] = true
	}

	sessions := svc.List(ctx)
	if len(sessions) != 5 {
		t.Fatalf("expected 5 sessions, got %d", len(sessions))
	}
	for _, sess := range sessions {
		if !seen[sess.ID] {
			t.Fatalf("listed session with unknown id %q", sess.ID)
		}
	}
}

func TestCreateReturnsRecordOnWriteFailure(t *testing.T) {
	svc, srv := newTestService(t)
	srv.SetError("quota exceeded")

	created, err := svc.Create(context.Background(), Session{Date: "2024-03-01", Location: "Pipeline"})
	if err == nil {
		t.Fatalf("expected write error")
	}
	if created.ID == "" {
		t.Fatalf("expected in-memory record even when store write fails")
	}
}

func TestUpdateMergesOnlyNamedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Session{
		Date: "2024-03-01", Location: "Uluwatu", WaveHeight: 3, Duration: 2,
		Board: "Fish", Rating: 4, Conditions: "good", Crowd: "light", Notes: "offshore",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rating := Number(5)
	updated, found, err := svc.Update(ctx, created.ID, Patch{Rating: &rating})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.Rating != 5 {
		t.Fatalf("expected rating updated")
	}
	if updated.Location != "Uluwatu" || updated.WaveHeight != 3 || updated.Notes != "offshore" {
		t.Fatalf("expected untouched fields preserved: %+v", updated)
	}
	if updated.ID != created.ID || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("identity fields must not change")
	}
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, Session{Date: "2024-03-01", Location: "Uluwatu"})

	loc := "elsewhere"
	_, found, err := svc.Update(ctx, "no-such-id", Patch{Location: &loc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if found {
		t.Fatalf("expected found=false")
	}

	sessions := svc.List(ctx)
	if len(sessions) != 1 || sessions[0].Location != created.Location {
		t.Fatalf("collection must be unchanged: %+v", sessions)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, Session{Date: "2024-03-01", Location: "A"})
	b, _ := svc.Create(ctx, Session{Date: "2024-03-02", Location: "B"})

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	sessions := svc.List(ctx)
	if len(sessions) != 1 || sessions[0].ID != b.ID {
		t.Fatalf("expected only remaining session %q, got %+v", b.ID, sessions)
	}
}

func TestAttachPhotoLimit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, Session{Date: "2024-03-01", Location: "A"})
	for i := 0; i < MaxPhotos; i++ {
		if _, _, err := svc.AttachPhoto(ctx, created.ID, "https://photos.example/p.jpg"); err != nil {
			t.Fatalf("attach %d: %v", i, err)
		}
	}
	_, found, err := svc.AttachPhoto(ctx, created.ID, "https://photos.example/extra.jpg")
	if !found || !errors.Is(err, ErrPhotoLimit) {
		t.Fatalf("expected photo limit error, got found=%v err=%v", found, err)
	}

	_, found, _ = svc.AttachPhoto(ctx, "missing", "https://photos.example/p.jpg")
	if found {
		t.Fatalf("expected found=false for missing session")
	}
}

func TestDetachPhoto(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, Session{Date: "2024-03-01", Location: "A"})
	_, _, _ = svc.AttachPhoto(ctx, created.ID, "https://photos.example/a.jpg")
	_, _, _ = svc.AttachPhoto(ctx, created.ID, "https://photos.example/b.jpg")

	updated, found, err := svc.DetachPhoto(ctx, created.ID, "https://photos.example/a.jpg")
	if err != nil || !found {
		t.Fatalf("detach: found=%v err=%v", found, err)
	}
	if len(updated.Photos) != 1 || updated.Photos[0] != "https://photos.example/b.jpg" {
		t.Fatalf("unexpected photos: %v", updated.Photos)
	}
}

func TestListCoercesLegacyStringNumbers(t *testing.T) {
	svc, srv := newTestService(t)

	// Payload as written by the original browser client: numbers as strings.
	legacy := []map[string]any{{
		"id":         "1700000000000",
		"createdAt":  "2023-11-14T22:13:20Z",
		"date":       "2023-11-14",
		"location":   "Huntington Beach",
		"waveHeight": "3.5",
		"duration":   "2",
		"board":      "Shortboard",
		"rating":     "4",
		"conditions": "good",
		"crowd":      "moderate",
	}}
	payload, _ := json.Marshal(legacy)
	if err := srv.Set("sessions", string(payload)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sessions := svc.List(context.Background())
	if len(sessions) != 1 {
		t.Fatalf("expected legacy record to decode, got %d", len(sessions))
	}
	got := sessions[0]
	if got.WaveHeight != 3.5 || got.Duration != 2 || got.Rating != 4 {
		t.Fatalf("expected coerced numerics, got %+v", got)
	}
}
