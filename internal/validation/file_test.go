package validation

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	pngContent = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0}, 64)...)
	jpgContent = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 64)...)
)

// fileHeader builds a real multipart.FileHeader the way net/http would
// hand it to a handler.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["document"][0]
}

func TestValidateDocumentAccepted(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
	}{
		{"pdf", "transcript.pdf", pdfContent},
		{"png", "photo.png", pngContent},
		{"jpeg", "photo.jpg", jpgContent},
		{"jpeg alt extension", "photo.jpeg", jpgContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(fileHeader(t, tt.filename, tt.content))
			require.NoError(t, err)
		})
	}
}

func TestValidateDocumentRejected(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		wantMsg  string
	}{
		{"plain text", "notes.txt", []byte("hello, this is plain text"), "invalid file type"},
		{"text disguised as pdf", "notes.pdf", []byte("hello, this is plain text"), "invalid file type"},
		{"executable disguised as png", "photo.png", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01}, "invalid file type"},
		{"pdf content with wrong extension", "transcript.exe", pdfContent, "invalid file extension"},
		{"oversized pdf", "big.pdf", append(pdfContent, bytes.Repeat([]byte{0x20}, MaxDocumentSize)...), "file too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(fileHeader(t, tt.filename, tt.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
