package http

import (
	"log/slog"
	"net/http"

	"notekeeper/internal/domain"
)

// CreateTagRequest is the request body for POST /api/tags. The id is the tag
// name itself.
type CreateTagRequest struct {
	ID    string `json:"id" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type TagController struct {
	Logger  *slog.Logger
	Service domain.TagService
}

func NewTagController(logger *slog.Logger, svc domain.TagService) *TagController {
	return &TagController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List tags
// @Description Returns all tag records, zero-count ones included.
// @Tags tags
// @Produce json
// @Success 200 {object} APIResponse "data contains the tag list"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /tags [get]
func (c *TagController) List(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListTags(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to list tags")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, tags)
}

// Create godoc
// @Summary Create or fetch a tag
// @Description Lookup-or-create: an existing id returns the record unchanged with 200, count preserved. A new id is inserted with count 0 and returned with 201.
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body CreateTagRequest true "Tag"
// @Success 200 {object} APIResponse "data contains the existing tag"
// @Success 201 {object} APIResponse "data contains the created tag"
// @Failure 400 {object} APIResponse "error.code: bad_request"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /tags [post]
func (c *TagController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	tag, created, err := c.Service.EnsureTag(r.Context(), req.ID, req.Color)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to create tag")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	WriteJSONSuccess(w, status, tag)
}
