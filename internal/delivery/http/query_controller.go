package http

import (
	"log/slog"
	"net/http"

	"notekeeper/internal/domain"
)

type QueryController struct {
	Logger  *slog.Logger
	Service domain.QueryService
}

func NewQueryController(logger *slog.Logger, svc domain.QueryService) *QueryController {
	return &QueryController{
		Logger:  logger,
		Service: svc,
	}
}

// Search godoc
// @Summary Search notes
// @Description Filters combine with AND semantics: q is a case-insensitive substring match on title or content, notebook is an exact id match, and every tags value must be present on the note. Results are sorted by updated descending.
// @Tags search
// @Produce json
// @Param q query string false "Substring to match in title or content"
// @Param notebook query string false "Notebook ID"
// @Param tags query []string false "Tags the note must all carry" collectionFormat(multi)
// @Success 200 {object} APIResponse "data contains the matching notes"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /search [get]
func (c *QueryController) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	notes, err := c.Service.SearchNotes(r.Context(), domain.SearchFilter{
		Query:      params.Get("q"),
		NotebookID: params.Get("notebook"),
		Tags:       params["tags"],
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to search notes")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, notes)
}

// Stats godoc
// @Summary Workspace statistics
// @Description Totals over the document. totalTags counts only tags currently referenced by at least one note.
// @Tags stats
// @Produce json
// @Success 200 {object} APIResponse "data contains the stats"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /stats [get]
func (c *QueryController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to compute stats")
		return
	}
	WriteJSONSuccess(w, http.StatusOK, stats)
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} APIResponse "data contains the status"
// @Router /health [get]
func (c *QueryController) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
