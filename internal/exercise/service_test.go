package exercise

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type stubRepo struct {
	exercise *Exercise
	attempts []*UserExerciseAttempt
}

func (s *stubRepo) Create(e *Exercise) error { return nil }

func (s *stubRepo) FindByID(id uuid.UUID) (*Exercise, error) {
	if s.exercise != nil && s.exercise.ID == id {
		return s.exercise, nil
	}
	return nil, nil
}

func (s *stubRepo) ListByLesson(lessonID uuid.UUID) ([]Exercise, error) { return nil, nil }

func (s *stubRepo) UpsertAttempt(attempt *UserExerciseAttempt) error {
	s.attempts = append(s.attempts, attempt)
	return nil
}

func makeExercise() *Exercise {
	explanation := "A for loop iterates over a sequence."
	e := &Exercise{ID: uuid.New(), Question: "Which keyword starts a loop?"}
	e.Choices = []Choice{
		{ID: uuid.New(), ExerciseID: e.ID, Text: "for", IsCorrect: true, Explanation: &explanation},
		{ID: uuid.New(), ExerciseID: e.ID, Text: "def"},
	}
	return e
}

func TestSubmitAttempt(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("CorrectChoice", func(t *testing.T) {
		e := makeExercise()
		repo := &stubRepo{exercise: e}
		svc := NewService(repo)

		res, err := svc.SubmitAttempt(ctx, userID, e.ID, e.Choices[0].ID)
		if err != nil {
			t.Fatalf("SubmitAttempt failed: %v", err)
		}
		if !res.Correct {
			t.Error("Expected the correct choice to be graded correct")
		}
		if res.Explanation == "" {
			t.Error("Expected the choice explanation in the result")
		}
		if len(repo.attempts) != 1 || !repo.attempts[0].IsCorrect {
			t.Error("The attempt was not recorded as correct")
		}
	})

	t.Run("WrongChoice", func(t *testing.T) {
		e := makeExercise()
		repo := &stubRepo{exercise: e}
		svc := NewService(repo)

		res, err := svc.SubmitAttempt(ctx, userID, e.ID, e.Choices[1].ID)
		if err != nil {
			t.Fatalf("SubmitAttempt failed: %v", err)
		}
		if res.Correct {
			t.Error("Expected the wrong choice to be graded incorrect")
		}
	})

	t.Run("ForeignChoiceRejected", func(t *testing.T) {
		e := makeExercise()
		svc := NewService(&stubRepo{exercise: e})

		_, err := svc.SubmitAttempt(ctx, userID, e.ID, uuid.New())
		if !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("Expected ErrInvalidChoice, got %v", err)
		}
	})

	t.Run("UnknownExercise", func(t *testing.T) {
		svc := NewService(&stubRepo{})

		_, err := svc.SubmitAttempt(ctx, userID, uuid.New(), uuid.New())
		if !errors.Is(err, ErrExerciseNotFound) {
			t.Errorf("Expected ErrExerciseNotFound, got %v", err)
		}
	})
}
