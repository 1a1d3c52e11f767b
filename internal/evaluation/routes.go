package evaluation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateEvaluation)
	r.Get("/{id}/attempts", h.ListMyAttempts)

	return r
}
