package evaluation

import (
	"encoding/json"
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

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrLevelNotCompleted):
		return "Please complete all lessons of this level before the evaluation."
	case errors.Is(err, ErrAlreadyPassed):
		return "You have already passed this evaluation. A new attempt is not allowed."
	case errors.Is(err, ErrMaxAttempts):
		return "Maximum of 3 attempts reached for this evaluation."
	default:
		return ""
	}
}

func (h *Handler) courseAndLevel(r *http.Request) (uuid.UUID, course.Level, error) {
	courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
	if err != nil {
		return uuid.Nil, "", errors.New("invalid course id")
	}
	level := course.Level(chi.URLParam(r, "level"))
	if !level.IsValid() {
		return uuid.Nil, "", errors.New("invalid level")
	}
	return courseID, level, nil
}

func (h *Handler) StartEvaluation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, level, err := h.courseAndLevel(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := h.service.Start(r.Context(), userID, courseID, level)
	if err != nil {
		if msg := rejectionMessage(err); msg != "" {
			config.JSON(w, http.StatusForbidden, map[string]string{"message": msg})
			return
		}
		if errors.Is(err, ErrEvaluationNotFound) {
			http.Error(w, "evaluation not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to start evaluation")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, form)
}

func (h *Handler) SubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, level, err := h.courseAndLevel(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var submission SubmissionDTO
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.WithError(err).Error("Invalid request body for evaluation submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, courseID, level, submission)
	if err != nil {
		if msg := rejectionMessage(err); msg != "" {
			config.JSON(w, http.StatusForbidden, map[string]string{"message": msg})
			return
		}
		if errors.Is(err, ErrEvaluationNotFound) {
			http.Error(w, "evaluation not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to grade evaluation submission")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
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

	var dto CreateEvaluationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for evaluation creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	eval, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidEvaluation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to create evaluation")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, eval)
}

func (h *Handler) ListMyAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	evaluationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid evaluation id", http.StatusBadRequest)
		return
	}

	attempts, err := h.service.ListAttempts(r.Context(), userID, evaluationID)
	if err != nil {
		log.WithError(err).Error("Failed to list attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}
