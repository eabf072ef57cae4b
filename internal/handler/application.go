package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/springvale/admissions/internal/model"
	"github.com/springvale/admissions/internal/service"
	"github.com/springvale/admissions/internal/storage"
	"github.com/springvale/admissions/internal/validation"
)

// formMemoryLimit is how much of a parsed multipart form is held in
// memory before spilling to temp files.
const formMemoryLimit = 1 << 20

type applicationHandler struct {
	apps    *service.ApplicationService
	storage storage.Storage
}

func NewApplicationHandler(apps *service.ApplicationService, st storage.Storage) *applicationHandler {
	return &applicationHandler{
		apps:    apps,
		storage: st,
	}
}

// Submit handles a new admission application. Stages run in order and
// short-circuit on the first failure: parse, document intake, field
// validation, insert, then the fire-and-forget confirmation email inside
// the service.
func (h *applicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// Reject oversized bodies before buffering a whole upload: the
	// document cap plus slack for the text fields and encoding overhead.
	r.Body = http.MaxBytesReader(w, r.Body, validation.MaxDocumentSize+formMemoryLimit)

	err := r.ParseMultipartForm(formMemoryLimit)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusBadRequest, "file too large: maximum size is 10 MB")
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			writeError(w, http.StatusBadRequest, "Failed to parse form")
			return
		}
		// Plain form posts without a document are fine
		_ = r.ParseForm()
	}

	storedName, filePath, handled := h.intakeDocument(w, r)
	if handled {
		return
	}

	in := &validation.ApplicationInput{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		ClassLevel: r.FormValue("class_level"),
		Notes:      r.FormValue("notes"),
	}

	fieldErrs := validation.ValidateApplication(in)
	if len(fieldErrs) > 0 {
		h.discard(storedName)
		writeFieldErrors(w, fieldErrs)
		return
	}

	app := &model.Application{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		ClassLevel: optional(in.ClassLevel),
		Notes:      optional(in.Notes),
		FilePath:   filePath,
	}

	id, err := h.apps.Submit(app)
	if err != nil {
		slog.Error("failed to save application", "error", err)
		h.discard(storedName)
		writeError(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":      id,
		"message": "Application submitted successfully",
	})
}

// List returns every stored application, newest first. Basic auth is
// enforced by middleware before this runs.
func (h *applicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.List()
	if err != nil {
		slog.Error("failed to fetch applications", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"applications": apps})
}

// intakeDocument validates and stores the optional "document" upload.
// Returns the stored name and public path (empty/nil when no file was
// attached) and whether a response has already been written.
func (h *applicationHandler) intakeDocument(w http.ResponseWriter, r *http.Request) (string, *string, bool) {
	if r.MultipartForm == nil {
		return "", nil, false
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, false
		}
		writeError(w, http.StatusBadRequest, "Invalid file upload")
		return "", nil, true
	}
	defer func() { _ = file.Close() }()

	err = validation.ValidateDocument(header)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", nil, true
	}

	name := storage.SafeFilename(header.Filename)
	err = h.storage.Save(name, file)
	if err != nil {
		slog.Error("failed to store uploaded document", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save uploaded file")
		return "", nil, true
	}

	url := h.storage.URL(name)
	return name, &url, false
}

// discard removes a stored upload when a later stage fails, so rejected
// submissions do not leave orphaned files behind.
func (h *applicationHandler) discard(storedName string) {
	if storedName == "" {
		return
	}
	err := h.storage.Delete(storedName)
	if err != nil {
		slog.Warn("failed to remove orphaned upload", "error", err, "name", storedName)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
