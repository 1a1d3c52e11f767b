package exercise

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/config"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidChoice    = errors.New("choice does not belong to this exercise")
)

type Service interface {
	Create(ctx context.Context, dto CreateExerciseDTO) (*Exercise, error)
	ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]Exercise, error)
	SubmitAttempt(ctx context.Context, userID, exerciseID, choiceID uuid.UUID) (*AttemptResultDTO, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateExerciseDTO) (*Exercise, error) {
	log := config.WithContext(ctx)

	e := &Exercise{
		LessonID: dto.LessonID,
		Question: dto.Question,
		Order:    dto.Order,
	}
	for _, c := range dto.Choices {
		e.Choices = append(e.Choices, Choice{
			Text:        c.Text,
			IsCorrect:   c.IsCorrect,
			Order:       c.Order,
			Explanation: c.Explanation,
		})
	}

	if err := s.repo.Create(e); err != nil {
		log.WithError(err).Error("Failed to create exercise")
		return nil, err
	}
	return e, nil
}

func (s *service) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]Exercise, error) {
	return s.repo.ListByLesson(lessonID)
}

// SubmitAttempt resolves the choice against the exercise's own choice set
// and upserts the answer. Unlike evaluations, a foreign choice id is a
// client error here, not a silent miss.
func (s *service) SubmitAttempt(ctx context.Context, userID, exerciseID, choiceID uuid.UUID) (*AttemptResultDTO, error) {
	log := config.WithContext(ctx)

	e, err := s.repo.FindByID(exerciseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExerciseNotFound
	}

	var chosen *Choice
	for i := range e.Choices {
		if e.Choices[i].ID == choiceID {
			chosen = &e.Choices[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrInvalidChoice
	}

	attempt := &UserExerciseAttempt{
		UserID:     userID,
		ExerciseID: e.ID,
		ChoiceID:   chosen.ID,
		IsCorrect:  chosen.IsCorrect,
	}
	if err := s.repo.UpsertAttempt(attempt); err != nil {
		log.WithError(err).Error("Failed to record exercise attempt")
		return nil, err
	}

	result := &AttemptResultDTO{Correct: chosen.IsCorrect}
	if chosen.Explanation != nil {
		result.Explanation = *chosen.Explanation
	}
	return result, nil
}
