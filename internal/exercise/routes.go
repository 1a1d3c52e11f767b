package exercise

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateExercise)
	r.Post("/{id}/submit", h.SubmitAttempt)

	return r
}
