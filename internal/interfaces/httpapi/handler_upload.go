package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/riskibarqy/campus-league/internal/usecase"
)

const (
	defaultUploadDir      = "uploads"
	defaultUploadMaxBytes = 5 << 20
	uploadFormField       = "file"
	uploadRoutePrefix     = "/v1/uploads/"
)

var allowedUploadTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadFile")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.UploadMaxBytes+(1<<10))
	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field %q is required: %v", usecase.ErrInvalidInput, uploadFormField, err))
		return
	}
	defer file.Close()

	if header.Size > h.opts.UploadMaxBytes {
		writeError(ctx, w, fmt.Errorf("%w: file exceeds %d bytes", usecase.ErrInvalidInput, h.opts.UploadMaxBytes))
		return
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read upload: %v", usecase.ErrInvalidInput, err))
		return
	}
	ext, ok := allowedUploadTypes[detected.String()]
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: file type %s is not allowed", usecase.ErrInvalidInput, detected.String()))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.logger.ErrorContext(ctx, "rewind upload failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	filename := uploadFilename(header.Filename, h.now().Unix(), ext)
	size, err := saveUpload(h.opts.UploadDir, filename, file)
	if err != nil {
		h.logger.ErrorContext(ctx, "save upload failed", "filename", filename, "error", err)
		writeInternalError(ctx, w)
		return
	}

	h.logger.InfoContext(ctx, "file uploaded", "filename", filename, "content_type", detected.String(), "size", size)
	writeSuccess(ctx, w, http.StatusCreated, uploadDTO{
		Filename:    filename,
		URL:         h.uploadURL(r, filename),
		ContentType: detected.String(),
		Size:        size,
	})
}

func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeUpload")
	defer span.End()

	name := r.PathValue("filename")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		writeError(ctx, w, fmt.Errorf("%w: upload %q", usecase.ErrNotFound, name))
		return
	}

	path := filepath.Join(h.opts.UploadDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(ctx, w, fmt.Errorf("%w: upload %q", usecase.ErrNotFound, name))
		return
	}

	http.ServeFile(w, r.WithContext(ctx), path)
}

func (h *Handler) uploadURL(r *http.Request, filename string) string {
	base := strings.TrimRight(strings.TrimSpace(h.opts.UploadPublicBaseURL), "/")
	if base == "" {
		scheme := "http"
		if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + uploadRoutePrefix + filename
}

// uploadFilename builds "<sanitized-name>_<unix>.<ext>" from the client name.
func uploadFilename(original string, unix int64, ext string) string {
	stem := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	var b strings.Builder
	for _, r := range stem {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '.':
			b.WriteByte('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = "upload"
	}
	if len(name) > 80 {
		name = name[:80]
	}
	return name + "_" + strconv.FormatInt(unix, 10) + ext
}

func saveUpload(dir, filename string, src io.Reader) (int64, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, crerr.Wrapf(err, "create upload dir %q", dir)
	}

	dst, err := os.OpenFile(filepath.Join(dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, crerr.Wrapf(err, "create upload file %q", filename)
	}

	size, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		_ = os.Remove(dst.Name())
		return 0, crerr.Wrapf(copyErr, "write upload file %q", filename)
	}
	if closeErr != nil {
		return 0, crerr.Wrapf(closeErr, "close upload file %q", filename)
	}
	return size, nil
}
