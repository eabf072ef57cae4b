package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"

	"github.com/springvale/admissions/internal/config"
)

// Storage abstracts where uploaded documents are kept.
type Storage interface {
	// Save stores a file under the given name
	Save(name string, file io.Reader) error

	// Delete removes a stored file
	Delete(name string) error

	// URL returns the public-facing path or URL for a stored file
	URL(name string) string
}

// New selects a storage backend from config. Local disk is the default;
// any S3-compatible service (AWS, MinIO, DO Spaces, R2) via UPLOAD_BACKEND=s3.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.UploadBackend {
	case "", "local":
		return NewLocalStorage(cfg.UploadDir)
	case "s3":
		return NewS3Storage(S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.UploadBackend)
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SafeFilename builds a unique storage name for an uploaded file: a
// millisecond timestamp prefix plus the original name with anything
// outside [a-zA-Z0-9._-] replaced by underscores. Directory components
// are stripped so a crafted filename cannot traverse out of the upload
// directory, and the timestamp keeps concurrent uploads from colliding.
func SafeFilename(original string) string {
	base := filepath.Base(original)
	safe := unsafeChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safe)
}
