package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

// Smallest valid PNG: signature plus IHDR header chunk.
var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89,
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(uploadFormField, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestUploadFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "team logo.png", want: "team_logo_1700000000.png"},
		{in: "../../etc/passwd.png", want: "passwd_1700000000.png"},
		{in: "çàé.png", want: "upload_1700000000.png"},
		{in: "crest.v2.PNG", want: "crest_v2_1700000000.png"},
	}

	for _, tt := range tests {
		if got := uploadFilename(tt.in, 1700000000, ".png"); got != tt.want {
			t.Fatalf("uploadFilename(%q)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestUploadFile_StoresImageAndServesIt(t *testing.T) {
	dir := t.TempDir()
	env := newTestEnv(t, dir)
	token := env.login(t)

	body, contentType := multipartUpload(t, "ITB crest.png", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data uploadDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(envelope.Data.Filename, "ITB_crest_") || !strings.HasSuffix(envelope.Data.Filename, ".png") {
		t.Fatalf("unexpected stored name %q", envelope.Data.Filename)
	}
	if envelope.Data.ContentType != "image/png" {
		t.Fatalf("unexpected content type %q", envelope.Data.ContentType)
	}
	if !strings.HasSuffix(envelope.Data.URL, "/v1/uploads/"+envelope.Data.Filename) {
		t.Fatalf("unexpected url %q", envelope.Data.URL)
	}

	stored, err := os.ReadFile(filepath.Join(dir, envelope.Data.Filename))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(stored, pngHeader) {
		t.Fatalf("stored content differs from upload")
	}

	serveRec := httptest.NewRecorder()
	env.router.ServeHTTP(serveRec, httptest.NewRequest(http.MethodGet, "/v1/uploads/"+envelope.Data.Filename, nil))
	if serveRec.Code != http.StatusOK || !bytes.Equal(serveRec.Body.Bytes(), pngHeader) {
		t.Fatalf("expected stored file to be served, got %d", serveRec.Code)
	}
}

func TestUploadFile_RejectsNonImage(t *testing.T) {
	env := newTestEnv(t, t.TempDir())
	token := env.login(t)

	body, contentType := multipartUpload(t, "notes.png", []byte("just some text pretending to be an image"))
	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestServeUpload_MissingFile(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/uploads/nope.png", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
