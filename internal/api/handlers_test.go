package api

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgallion1/docmap/internal/config"
)

func newTestServer() *Server {
	cfg := config.Config{
		Port:           "0",
		DocmapAPIKey:   "test-key",
		MaxUploadBytes: 1 << 20,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, cfg)
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &body, mw.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestHandleMap_RequiresAuth(t *testing.T) {
	srv := newTestServer()
	body, contentType := multipartUpload(t, "doc.txt", "hello")
	req := httptest.NewRequest(http.MethodPost, "/api/map", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without bearer token, got %d", rec.Code)
	}
}

func TestHandleMap_UnsupportedExtension(t *testing.T) {
	srv := newTestServer()
	body, contentType := multipartUpload(t, "data.csv", "a,b\n1,2\n")
	req := httptest.NewRequest(http.MethodPost, "/api/map", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported extension, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported file type") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestHandleMap_TextUpload(t *testing.T) {
	srv := newTestServer()
	body, contentType := multipartUpload(t, "notes.txt", "First paragraph.\n\nSecond paragraph.")
	req := httptest.NewRequest(http.MethodPost, "/api/map", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html response, got %q", ct)
	}
	out := rec.Body.String()
	if !strings.HasPrefix(out, "<html><body>") || !strings.HasSuffix(out, "</body></html>") {
		t.Error("expected a full html map document")
	}
	if !strings.Contains(out, "<pre>(0, 0, 0, 0) First paragraph.</pre>") {
		t.Errorf("expected addressed first paragraph, got %q", out)
	}
	if !strings.Contains(out, "<pre>(0, 0, 0, 1) Second paragraph.</pre>") {
		t.Errorf("expected addressed second paragraph, got %q", out)
	}
}

func TestHandleText_TextUpload(t *testing.T) {
	srv := newTestServer()
	body, contentType := multipartUpload(t, "notes.txt", "First paragraph.\n\nSecond paragraph.")
	req := httptest.NewRequest(http.MethodPost, "/api/text", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := "First paragraph.\n\nSecond paragraph."
	if rec.Body.String() != want {
		t.Errorf("expected %q, got %q", want, rec.Body.String())
	}
}

func TestHandleMap_MissingFile(t *testing.T) {
	srv := newTestServer()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("note", "no file here")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/map", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", rec.Code)
	}
}
