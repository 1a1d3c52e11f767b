package course

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	c, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create course")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			http.Error(w, "course not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load course")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	courses, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list courses")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) AddModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	courseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	var dto CreateModuleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.AddModule(r.Context(), courseID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCourseNotFound):
			http.Error(w, "course not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidLevel):
			http.Error(w, "invalid level", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to add module")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, m)
}

func (h *Handler) AddLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	moduleID, err := uuid.Parse(chi.URLParam(r, "moduleID"))
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	var dto CreateLessonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	l, err := h.service.AddLesson(r.Context(), moduleID, dto)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			http.Error(w, "module not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to add lesson")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, l)
}
