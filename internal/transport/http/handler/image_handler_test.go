package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/anhthuvo/mobileAppBE/internal/core/blob"
)

// memBlob keeps objects in a map so upload/download can be exercised
// without a running NATS server.
type memBlob struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemBlob() *memBlob {
	return &memBlob{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memBlob) Put(_ context.Context, name string, data []byte, contentType string) (*blob.Info, error) {
	m.objects[name] = data
	m.types[name] = contentType
	return &blob.Info{Name: name, Size: uint64(len(data)), ContentType: contentType, ModTime: time.Now()}, nil
}

func (m *memBlob) Get(_ context.Context, name string) ([]byte, *blob.Info, error) {
	data, ok := m.objects[name]
	if !ok {
		return nil, nil, blob.ErrNotFound
	}
	return data, &blob.Info{Name: name, Size: uint64(len(data)), ContentType: m.types[name]}, nil
}

func (m *memBlob) Delete(_ context.Context, name string) error {
	if _, ok := m.objects[name]; !ok {
		return blob.ErrNotFound
	}
	delete(m.objects, name)
	return nil
}

func (m *memBlob) Close() {}

func multipartUpload(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="images"; filename="pic"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func (s *testServer) uploadImage(t *testing.T, token, contentType string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartUpload(t, contentType, payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", body)
	req.Header.Set("Content-Type", ct)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestUploadAndDownloadImage(t *testing.T) {
	store := newMemBlob()
	s := newTestServerBlob(t, store)
	s.signup(t, "u@example.com", "secret123", "USER")
	tok, _ := s.login(t, "u@example.com", "secret123")

	payload := []byte{0x89, 'P', 'N', 'G'}
	w := s.uploadImage(t, tok, "image/png", payload)
	if w.Code != 201 {
		t.Fatalf("upload status = %d body %s", w.Code, w.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Images) != 1 || !strings.HasSuffix(out.Images[0], ".png") {
		t.Fatalf("images = %v", out.Images)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/"+out.Images[0], nil)
	dw := httptest.NewRecorder()
	s.engine.ServeHTTP(dw, req)
	if dw.Code != 200 {
		t.Fatalf("download status = %d", dw.Code)
	}
	if ct := dw.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if !bytes.Equal(dw.Body.Bytes(), payload) {
		t.Error("downloaded bytes differ from upload")
	}
}

func TestUploadImageRejections(t *testing.T) {
	store := newMemBlob()
	s := newTestServerBlob(t, store)
	s.signup(t, "u@example.com", "secret123", "USER")
	tok, _ := s.login(t, "u@example.com", "secret123")

	t.Run("no token", func(t *testing.T) {
		if w := s.uploadImage(t, "", "image/png", []byte("x")); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		w := s.uploadImage(t, tok, "application/pdf", []byte("%PDF"))
		if w.Code != 422 {
			t.Errorf("status = %d, want 422", w.Code)
		}
		if len(store.objects) != 0 {
			t.Error("rejected upload still stored an object")
		}
	})
}

func TestDownloadImageNotFound(t *testing.T) {
	s := newTestServerBlob(t, newMemBlob())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/images/ghost.png", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
