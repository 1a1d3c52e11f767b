package exercise

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/auth"
	"github.com/bunec-crvs/learning-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if claims.Role != "admin" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var dto CreateExerciseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Question == "" || len(dto.Choices) == 0 {
		http.Error(w, "question and choices required", http.StatusBadRequest)
		return
	}

	e, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create exercise")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) ListByLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	lessonID, err := uuid.Parse(chi.URLParam(r, "lessonID"))
	if err != nil {
		http.Error(w, "invalid lesson id", http.StatusBadRequest)
		return
	}

	exercises, err := h.service.ListByLesson(r.Context(), lessonID)
	if err != nil {
		log.WithError(err).Error("Failed to list exercises")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, exercises)
}

func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	exerciseID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	var dto SubmitAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.ChoiceID == uuid.Nil {
		http.Error(w, "choice_id required", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitAttempt(r.Context(), userID, exerciseID, dto.ChoiceID)
	if err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidChoice):
			http.Error(w, "invalid choice", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to submit exercise attempt")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}
