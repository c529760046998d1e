package http

import (
	"errors"
	"log/slog"
	"net/http"

	"notekeeper/internal/domain"
)

// CreateNoteRequest is the request body for POST /api/notes. The id is
// caller-supplied. Content may be empty; tags may repeat but are
// de-duplicated before counting.
type CreateNoteRequest struct {
	ID         string   `json:"id" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content"`
	NotebookID string   `json:"notebookId" validate:"required"`
	Tags       []string `json:"tags"`
	Starred    bool     `json:"starred"`
}

// UpdateNoteRequest is the request body for PUT /api/notes/{id}. Absent
// fields keep their current value; provided values are always applied, so an
// empty content or starred=false is honored. A provided tags array replaces
// the whole tag list.
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Starred *bool     `json:"starred"`
	Tags    *[]string `json:"tags"`
}

type NoteController struct {
	Logger  *slog.Logger
	Service domain.NoteService
}

func NewNoteController(logger *slog.Logger, svc domain.NoteService) *NoteController {
	return &NoteController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List notes
// @Description Returns all notes, most recently updated first.
// @Tags notes
// @Produce json
// @Success 200 {object} APIResponse "data contains the note list"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notes [get]
func (c *NoteController) List(w http.ResponseWriter, r *http.Request) {
	notes, err := c.Service.ListNotes(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list notes")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, notes)
}

// Get godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} APIResponse "data contains the note"
// @Failure 404 {object} APIResponse "error.code: not_found"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notes/{id} [get]
func (c *NoteController) Get(w http.ResponseWriter, r *http.Request) {
	note, err := c.Service.GetNote(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "note not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to get note")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, note)
}

// Create godoc
// @Summary Create a note
// @Description Creates a note, registers it with its notebook, and increments (creating if needed) every referenced tag. Timestamps are server-assigned.
// @Tags notes
// @Accept json
// @Produce json
// @Param note body CreateNoteRequest true "Note"
// @Success 201 {object} APIResponse "data contains the created note"
// @Failure 400 {object} APIResponse "error.code: bad_request"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notes [post]
func (c *NoteController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	note := &domain.Note{
		ID:         req.ID,
		Title:      req.Title,
		Content:    req.Content,
		NotebookID: req.NotebookID,
		Tags:       req.Tags,
		Starred:    req.Starred,
	}
	if err := c.Service.CreateNote(r.Context(), note); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to create note")
		return
	}
	WriteJSONSuccess(w, http.StatusCreated, note)
}

// Update godoc
// @Summary Update a note
// @Description Applies a partial update and rebalances tag counts between the old and new tag lists. The updated timestamp is refreshed; created never changes.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param patch body UpdateNoteRequest true "Fields to update"
// @Success 200 {object} APIResponse "data contains the updated note"
// @Failure 400 {object} APIResponse "error.code: bad_request"
// @Failure 404 {object} APIResponse "error.code: not_found"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notes/{id} [put]
func (c *NoteController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateNoteRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	note, err := c.Service.UpdateNote(r.Context(), id, domain.NotePatch{
		Title:   req.Title,
		Content: req.Content,
		Starred: req.Starred,
		Tags:    req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "note not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to update note")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Description Removes the note, releases its tag references, and drops it from its notebook. Returns 204 even when the note is absent.
// @Tags notes
// @Param id path string true "Note ID"
// @Success 204 "no content"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to delete note")
		return
	}
	WriteNoContent(w)
}

// ToggleStar godoc
// @Summary Toggle a note's star
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} APIResponse "data contains the updated note"
// @Failure 404 {object} APIResponse "error.code: not_found"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notes/{id}/star [post]
func (c *NoteController) ToggleStar(w http.ResponseWriter, r *http.Request) {
	note, err := c.Service.ToggleStar(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "note not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to toggle star")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, note)
}
