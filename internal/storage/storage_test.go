package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var safeNamePattern = regexp.MustCompile(`^\d+-[a-zA-Z0-9._-]+$`)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		original string
		suffix   string
	}{
		{"plain", "transcript.pdf", "-transcript.pdf"},
		{"spaces and parens", "report card (final).pdf", "-report_card__final_.pdf"},
		{"keeps dots dashes underscores", "a-b_c.d.png", "-a-b_c.d.png"},
		{"path traversal stripped", "../../etc/passwd", "-passwd"},
		{"windows separators", `..\..\boot.ini`, "-.._.._boot.ini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeFilename(tt.original)
			require.True(t, safeNamePattern.MatchString(got), "unsafe name %q", got)
			require.True(t, strings.HasSuffix(got, tt.suffix), "got %q, want suffix %q", got, tt.suffix)
			require.NotContains(t, got, "/")
		})
	}
}

func TestLocalStorageSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	st, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// Creating the directory is idempotent
	_, err = NewLocalStorage(dir)
	require.NoError(t, err)

	content := []byte("%PDF-1.4 test content")
	name := SafeFilename("transcript.pdf")
	require.NoError(t, st.Save(name, bytes.NewReader(content)))

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, content, stored)

	require.Equal(t, "/uploads/"+name, st.URL(name))
}

func TestLocalStorageDelete(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name := SafeFilename("photo.png")
	require.NoError(t, st.Save(name, bytes.NewReader([]byte("png bytes"))))
	require.NoError(t, st.Delete(name))

	_, err = os.Stat(filepath.Join(st.Dir(), name))
	require.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	require.NoError(t, st.Delete(name))
}

func TestLocalStorageSaveStaysInDir(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Save("../escape.txt", bytes.NewReader([]byte("x"))))

	_, err = os.Stat(filepath.Join(st.Dir(), "escape.txt"))
	require.NoError(t, err, "file should land inside the upload dir")
}
