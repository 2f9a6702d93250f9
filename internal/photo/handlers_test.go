package photo

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend-surfbuddy/internal/session"
	"backend-surfbuddy/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, fs *fakeStore) (*fiber.App, *session.Service, *Pipeline) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	sessions := session.NewService(store.New(client, zap.NewNop()), zap.NewNop())

	var pipe *Pipeline
	if fs != nil {
		pipe = NewPipeline(fs, "surf-photos", zap.NewNop())
	}

	app := fiber.New()
	g := app.Group("/sessions")
	session.RegisterRoutes(g, sessions)
	RegisterRoutes(g, pipe, sessions)
	return app, sessions, pipe
}

func multipartPhoto(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("photo", "wave.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = w.Close()
	return body, w.FormDataContentType()
}

func TestUploadPhotoRoute(t *testing.T) {
	fs := newFakeStore()
	app, sessions, _ := newTestApp(t, fs)

	created, _ := sessions.Create(context.Background(), session.Session{Date: "2024-03-01", Location: "x", Rating: 3})

	body, contentType := multipartPhoto(t, testImage(t, 1200, 800))
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+created.ID+"/photos", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status: %v %d", err, resp.StatusCode)
	}
	if len(fs.objects) != 1 {
		t.Fatalf("expected stored object")
	}

	updated := sessions.List(context.Background())[0]
	if len(updated.Photos) != 1 || !strings.HasPrefix(updated.Photos[0], "https://storage.googleapis.com/surf-photos/sessions/"+created.ID+"/") {
		t.Fatalf("unexpected photo reference: %v", updated.Photos)
	}
}

func TestUploadPhotoMissingSession(t *testing.T) {
	fs := newFakeStore()
	app, _, _ := newTestApp(t, fs)

	body, contentType := multipartPhoto(t, testImage(t, 100, 100))
	req := httptest.NewRequest(http.MethodPost, "/sessions/missing/photos", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	// The orphaned upload is reclaimed when the session is missing.
	if len(fs.objects) != 0 {
		t.Fatalf("expected uploaded object cleaned up")
	}
}

func TestUploadPhotoRejectsGarbage(t *testing.T) {
	app, sessions, _ := newTestApp(t, newFakeStore())

	created, _ := sessions.Create(context.Background(), session.Session{Date: "2024-03-01", Location: "x", Rating: 3})

	body, contentType := multipartPhoto(t, []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+created.ID+"/photos", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestPhotoRoutesWithoutBucket(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	body, contentType := multipartPhoto(t, testImage(t, 100, 100))
	req := httptest.NewRequest(http.MethodPost, "/sessions/any/photos", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestDetachPhotoRoute(t *testing.T) {
	fs := newFakeStore()
	app, sessions, pipe := newTestApp(t, fs)
	ctx := context.Background()

	created, _ := sessions.Create(ctx, session.Session{Date: "2024-03-01", Location: "x", Rating: 3})
	url, err := pipe.Upload(ctx, []byte("x"), created.ID)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	_, _, _ = sessions.AttachPhoto(ctx, created.ID, url)

	payload := []byte(`{"url":"` + url + `"}`)
	req := httptest.NewRequest(http.MethodDelete, "/sessions/"+created.ID+"/photos", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("detach status: %d", resp.StatusCode)
	}
	if len(fs.objects) != 0 {
		t.Fatalf("expected remote object removed")
	}
	if got := sessions.List(ctx)[0].Photos; len(got) != 0 {
		t.Fatalf("expected photo detached, got %v", got)
	}
}
