package http

import (
	"errors"
	"log/slog"
	"net/http"

	"notekeeper/internal/domain"
)

// CreateNotebookRequest is the request body for POST /api/notebooks. The id
// is caller-supplied; uniqueness is the caller's responsibility.
type CreateNotebookRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateNotebookRequest is the request body for PUT /api/notebooks/{id}.
// Absent fields keep their current value; provided values are always applied.
type UpdateNotebookRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type NotebookController struct {
	Logger  *slog.Logger
	Service domain.NotebookService
}

func NewNotebookController(logger *slog.Logger, svc domain.NotebookService) *NotebookController {
	return &NotebookController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List notebooks
// @Tags notebooks
// @Produce json
// @Success 200 {object} APIResponse "data contains the notebook list"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notebooks [get]
func (c *NotebookController) List(w http.ResponseWriter, r *http.Request) {
	notebooks, err := c.Service.ListNotebooks(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list notebooks")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, notebooks)
}

// Create godoc
// @Summary Create a notebook
// @Description Creates a notebook with an empty note list. The creation time is server-assigned; color defaults when omitted.
// @Tags notebooks
// @Accept json
// @Produce json
// @Param notebook body CreateNotebookRequest true "Notebook"
// @Success 201 {object} APIResponse "data contains the created notebook"
// @Failure 400 {object} APIResponse "error.code: bad_request"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notebooks [post]
func (c *NotebookController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNotebookRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	nb := &domain.Notebook{ID: req.ID, Name: req.Name, Color: req.Color}
	if err := c.Service.CreateNotebook(r.Context(), nb); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to create notebook")
		return
	}
	WriteJSONSuccess(w, http.StatusCreated, nb)
}

// Update godoc
// @Summary Update a notebook
// @Description Applies a partial update. Absent fields keep their current value; the note list and creation time are never touched.
// @Tags notebooks
// @Accept json
// @Produce json
// @Param id path string true "Notebook ID"
// @Param patch body UpdateNotebookRequest true "Fields to update"
// @Success 200 {object} APIResponse "data contains the updated notebook"
// @Failure 400 {object} APIResponse "error.code: bad_request"
// @Failure 404 {object} APIResponse "error.code: not_found"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notebooks/{id} [put]
func (c *NotebookController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateNotebookRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	nb, err := c.Service.UpdateNotebook(r.Context(), id, domain.NotebookPatch{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "notebook not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to update notebook")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, nb)
}

// Delete godoc
// @Summary Delete a notebook
// @Description Removes the notebook and cascade-deletes every note in it, releasing their tag references. Returns 204 even when the notebook is absent.
// @Tags notebooks
// @Param id path string true "Notebook ID"
// @Success 204 "no content"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /notebooks/{id} [delete]
func (c *NotebookController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteNotebook(r.Context(), r.PathValue("id")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to delete notebook")
		return
	}
	WriteNoContent(w)
}
