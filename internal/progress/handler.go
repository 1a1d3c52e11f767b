package progress

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/auth"
	"github.com/bunec-crvs/learning-api/internal/config"
	"github.com/bunec-crvs/learning-api/internal/course"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) MarkLessonComplete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	lessonID, err := uuid.Parse(chi.URLParam(r, "lessonID"))
	if err != nil {
		http.Error(w, "invalid lesson id", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkLessonComplete(r.Context(), userID, lessonID); err != nil {
		if errors.Is(err, ErrLessonNotFound) {
			http.Error(w, "lesson not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to mark lesson complete")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "lesson marked as completed",
	})
}

func (h *Handler) LevelCompletion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	level := course.Level(chi.URLParam(r, "level"))
	if !level.IsValid() {
		http.Error(w, "invalid level", http.StatusBadRequest)
		return
	}

	completion, err := h.service.LevelCompletion(r.Context(), userID, courseID, level)
	if err != nil {
		log.WithError(err).Error("Failed to compute level completion")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, completion)
}
