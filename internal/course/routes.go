package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateCourse)
	r.Get("/", h.ListCourses)
	r.Get("/{id}", h.GetCourse)
	r.Post("/{id}/modules", h.AddModule)

	return r
}
