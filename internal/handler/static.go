package handler

import (
	"net/http"
	"os"
	"path/filepath"
)

// staticHandler serves the public site and the uploads directory.
// Anything that does not resolve to a real file gets the JSON 404, same
// as an unmatched API route.
type staticHandler struct {
	staticDir string
	uploadDir string
}

func NewStaticHandler(staticDir, uploadDir string) *staticHandler {
	return &staticHandler{
		staticDir: staticDir,
		uploadDir: uploadDir,
	}
}

// Upload serves one stored document by name.
func (h *staticHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Base strips any traversal the route pattern let through
	name := filepath.Base(r.PathValue("file"))
	h.serveFile(w, r, filepath.Join(h.uploadDir, name))
}

// Static serves site files, with index.html at the root. This is also
// the mux fallback, so unmatched routes end up as the JSON 404 here.
func (h *staticHandler) Static(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	rel := filepath.Clean("/" + r.URL.Path)
	path := filepath.Join(h.staticDir, rel)

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	http.ServeFile(w, r, path)
}

func (h *staticHandler) serveFile(w http.ResponseWriter, r *http.Request, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	http.ServeFile(w, r, path)
}
