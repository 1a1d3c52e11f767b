package certification

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bunec-crvs/learning-api/internal/auth"
	"github.com/bunec-crvs/learning-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Verify is public: third parties check a certificate code scanned from
// the document.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	code := chi.URLParam(r, "code")
	if code == "" {
		http.Error(w, "certificate code required", http.StatusBadRequest)
		return
	}

	dto, err := h.service.Verify(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrCertificationNotFound) {
			http.Error(w, "certificate not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to verify certificate")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, dto)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	certs, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list certifications")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, certs)
}
