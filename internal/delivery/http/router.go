package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(notebooks *NotebookController, notes *NoteController, tags *TagController, queries *QueryController) *http.ServeMux {
	mux := http.NewServeMux()

	// Notebooks
	mux.HandleFunc("GET /api/notebooks", notebooks.List)
	mux.HandleFunc("POST /api/notebooks", notebooks.Create)
	mux.HandleFunc("PUT /api/notebooks/{id}", notebooks.Update)
	mux.HandleFunc("DELETE /api/notebooks/{id}", notebooks.Delete)

	// Notes
	mux.HandleFunc("GET /api/notes", notes.List)
	mux.HandleFunc("POST /api/notes", notes.Create)
	mux.HandleFunc("GET /api/notes/{id}", notes.Get)
	mux.HandleFunc("PUT /api/notes/{id}", notes.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", notes.Delete)
	mux.HandleFunc("POST /api/notes/{id}/star", notes.ToggleStar)

	// Tags
	mux.HandleFunc("GET /api/tags", tags.List)
	mux.HandleFunc("POST /api/tags", tags.Create)

	// Queries
	mux.HandleFunc("GET /api/search", queries.Search)
	mux.HandleFunc("GET /api/stats", queries.Stats)
	mux.HandleFunc("GET /api/health", queries.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
