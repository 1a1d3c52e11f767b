package evaluation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/certification"
	"github.com/bunec-crvs/learning-api/internal/course"
	"github.com/bunec-crvs/learning-api/internal/progress"
)

type stubEvalRepo struct {
	active    *EvaluationLevel
	questions []EvaluationQuestion
	attempts  []Attempt
}

func (s *stubEvalRepo) FindActive(courseID uuid.UUID, level course.Level) (*EvaluationLevel, error) {
	return s.active, nil
}

func (s *stubEvalRepo) FindByID(id uuid.UUID) (*EvaluationLevel, error) {
	return s.active, nil
}

func (s *stubEvalRepo) ListQuestions(evaluationID uuid.UUID) ([]EvaluationQuestion, error) {
	return s.questions, nil
}

func (s *stubEvalRepo) ListAttempts(userID, evaluationID uuid.UUID) ([]Attempt, error) {
	return s.attempts, nil
}

type stubGate struct {
	comp progress.LevelCompletion
}

func (s *stubGate) LevelCompletion(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*progress.LevelCompletion, error) {
	return &s.comp, nil
}

type stubIssuer struct {
	calls int
}

func (s *stubIssuer) Issue(ctx context.Context, userID, courseID uuid.UUID, level course.Level, score float64) (*certification.Certification, error) {
	s.calls++
	return &certification.Certification{Code: "certcode"}, nil
}

func activeEvaluation() *EvaluationLevel {
	return &EvaluationLevel{
		ID:        uuid.New(),
		CourseID:  uuid.New(),
		Level:     course.LevelBeginner,
		Title:     "Beginner evaluation",
		Threshold: 60,
		IsActive:  true,
	}
}

// The nil *gorm.DB passed to NewService doubles as an assertion: any
// rejected submission that still reached the transaction would panic.
func TestSubmitRejections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("LockedLevel", func(t *testing.T) {
		eval := activeEvaluation()
		issuer := &stubIssuer{}
		svc := NewService(nil, &stubEvalRepo{active: eval}, &stubGate{comp: progress.LevelCompletion{Total: 3, Done: 1}}, issuer)

		_, err := svc.Submit(ctx, userID, eval.CourseID, eval.Level, SubmissionDTO{})
		if !errors.Is(err, ErrLevelNotCompleted) {
			t.Errorf("Expected ErrLevelNotCompleted, got %v", err)
		}
		if issuer.calls != 0 {
			t.Error("No certificate may be issued on a rejected submission")
		}
	})

	t.Run("AlreadyPassed", func(t *testing.T) {
		eval := activeEvaluation()
		repo := &stubEvalRepo{
			active:   eval,
			attempts: []Attempt{{Passed: true}},
		}
		svc := NewService(nil, repo, &stubGate{comp: progress.LevelCompletion{Total: 2, Done: 2, Completed: true}}, &stubIssuer{})

		_, err := svc.Submit(ctx, userID, eval.CourseID, eval.Level, SubmissionDTO{})
		if !errors.Is(err, ErrAlreadyPassed) {
			t.Errorf("Expected ErrAlreadyPassed, got %v", err)
		}
	})

	t.Run("QuotaExhausted", func(t *testing.T) {
		eval := activeEvaluation()
		repo := &stubEvalRepo{
			active:   eval,
			attempts: []Attempt{{}, {}, {}},
		}
		svc := NewService(nil, repo, &stubGate{comp: progress.LevelCompletion{Total: 2, Done: 2, Completed: true}}, &stubIssuer{})

		_, err := svc.Submit(ctx, userID, eval.CourseID, eval.Level, SubmissionDTO{})
		if !errors.Is(err, ErrMaxAttempts) {
			t.Errorf("Expected ErrMaxAttempts, got %v", err)
		}
	})

	t.Run("NoActiveEvaluation", func(t *testing.T) {
		svc := NewService(nil, &stubEvalRepo{}, &stubGate{}, &stubIssuer{})

		_, err := svc.Submit(ctx, userID, uuid.New(), course.LevelBeginner, SubmissionDTO{})
		if !errors.Is(err, ErrEvaluationNotFound) {
			t.Errorf("Expected ErrEvaluationNotFound, got %v", err)
		}
	})
}

func TestStart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("OpenEvaluationReturnsForm", func(t *testing.T) {
		eval := activeEvaluation()
		q := question(1,
			EvaluationChoice{Text: "for", IsCorrect: true},
			EvaluationChoice{Text: "loop"},
		)
		repo := &stubEvalRepo{active: eval, questions: []EvaluationQuestion{q}}
		svc := NewService(nil, repo, &stubGate{comp: progress.LevelCompletion{Total: 1, Done: 1, Completed: true}}, &stubIssuer{})

		form, err := svc.Start(ctx, userID, eval.CourseID, eval.Level)
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if form.EvaluationID != eval.ID || form.Threshold != 60 {
			t.Errorf("Unexpected form header: %+v", form)
		}
		if len(form.Questions) != 1 || len(form.Questions[0].Choices) != 2 {
			t.Fatalf("Unexpected form questions: %+v", form.Questions)
		}
	})

	t.Run("LockedEvaluationRefusesForm", func(t *testing.T) {
		eval := activeEvaluation()
		svc := NewService(nil, &stubEvalRepo{active: eval}, &stubGate{}, &stubIssuer{})

		_, err := svc.Start(ctx, userID, eval.CourseID, eval.Level)
		if !errors.Is(err, ErrLevelNotCompleted) {
			t.Errorf("Expected ErrLevelNotCompleted, got %v", err)
		}
	})
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, &stubEvalRepo{}, &stubGate{}, &stubIssuer{})

	t.Run("UnknownLevel", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEvaluationDTO{Level: "expert", Threshold: 70, Questions: []CreateQuestionDTO{{Text: "q"}}})
		if !errors.Is(err, ErrInvalidEvaluation) {
			t.Errorf("Expected ErrInvalidEvaluation, got %v", err)
		}
	})

	t.Run("ThresholdOutOfRange", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEvaluationDTO{Level: course.LevelBeginner, Threshold: 101, Questions: []CreateQuestionDTO{{Text: "q"}}})
		if !errors.Is(err, ErrInvalidEvaluation) {
			t.Errorf("Expected ErrInvalidEvaluation, got %v", err)
		}
	})

	t.Run("NoQuestions", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateEvaluationDTO{Level: course.LevelBeginner, Threshold: 70})
		if !errors.Is(err, ErrInvalidEvaluation) {
			t.Errorf("Expected ErrInvalidEvaluation, got %v", err)
		}
	})
}
