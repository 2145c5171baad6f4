package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxUploadSize is the hard cap on uploaded spreadsheet size.
	MaxUploadSize = 10 << 20 // 10MB
	uploadField   = "excelFile"
)

var allowedExtensions = []string{".xlsx", ".xls", ".csv"}

type uploadKey struct{}

// UploadedFile describes a file the upload middleware saved to disk. The
// handler owns the file and must remove it when done.
type UploadedFile struct {
	Path         string
	OriginalName string
	Size         int64
}

// FileFromContext returns the uploaded file stored by the Excel middleware.
func FileFromContext(ctx context.Context) (*UploadedFile, bool) {
	f, ok := ctx.Value(uploadKey{}).(*UploadedFile)
	return f, ok
}

// Upload saves multipart spreadsheet uploads to a spool directory before the
// handler runs, rejecting anything that is not a spreadsheet or is too large.
type Upload struct {
	dir string
}

// NewUpload creates the upload middleware, making sure the spool directory
// exists.
func NewUpload(dir string) (*Upload, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Upload{dir: dir}, nil
}

// Excel accepts a single spreadsheet in the "excelFile" multipart field,
// writes it to the spool directory under a unique name, and passes it to
// the next handler via the request context.
func (u *Upload) Excel(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+4096)

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			if strings.Contains(err.Error(), "request body too large") {
				rejectUpload(w, "File too large. Maximum size is 10MB")
				return
			}
			rejectUpload(w, "Please upload an Excel file")
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !isAllowedExtension(ext) {
			rejectUpload(w, "Only Excel files (.xlsx, .xls, .csv) are allowed!")
			return
		}
		if header.Size > MaxUploadSize {
			rejectUpload(w, "File too large. Maximum size is 10MB")
			return
		}

		path := filepath.Join(u.dir, "vehicle-"+uuid.NewString()+ext)
		dst, err := os.Create(path)
		if err != nil {
			log.WithError(err).Error("failed to create upload spool file")
			failUpload(w)
			return
		}
		size, err := io.Copy(dst, file)
		dst.Close()
		if err != nil {
			os.Remove(path)
			log.WithError(err).Error("failed to write upload spool file")
			failUpload(w)
			return
		}

		uploaded := &UploadedFile{
			Path:         path,
			OriginalName: header.Filename,
			Size:         size,
		}
		ctx := context.WithValue(r.Context(), uploadKey{}, uploaded)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func rejectUpload(w http.ResponseWriter, message string) {
	writeUploadJSON(w, http.StatusBadRequest, message)
}

func failUpload(w http.ResponseWriter) {
	writeUploadJSON(w, http.StatusInternalServerError, "Error saving uploaded file")
}

func writeUploadJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
