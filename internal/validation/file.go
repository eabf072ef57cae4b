package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxDocumentSize caps uploaded admission documents at 10 MiB.
const MaxDocumentSize = 10 << 20

// FileConstraints defines validation rules for file uploads.
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// DocumentConstraints accepts the document types parents actually send
// with an admission form: a PDF or a photographed/scanned page.
var DocumentConstraints = FileConstraints{
	AllowedMimeTypes: map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
	},
	AllowedExtensions: map[string]bool{
		".pdf":  true,
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	},
	MaxSize: MaxDocumentSize,
}

// ValidateDocument checks an uploaded admission document against
// DocumentConstraints.
func ValidateDocument(header *multipart.FileHeader) error {
	return validateFile(header, DocumentConstraints)
}

func validateFile(header *multipart.FileHeader, constraints FileConstraints) error {
	// Size first, before reading any content
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("file too large: maximum size is %d MB", maxMB)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads at most 512 bytes of magic numbers,
	// so a forged Content-Type header cannot smuggle another format in.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, err = seeker.Seek(0, io.SeekStart)
		if err != nil {
			return fmt.Errorf("failed to reset file pointer: %w", err)
		}
	}

	detected := http.DetectContentType(buffer[:n])
	// DetectContentType appends charset params to text types
	if i := strings.IndexByte(detected, ';'); i != -1 {
		detected = strings.TrimSpace(detected[:i])
	}
	if !constraints.AllowedMimeTypes[detected] {
		return fmt.Errorf("invalid file type (detected: %s)", detected)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	return nil
}
