package evaluation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunec-crvs/learning-api/internal/certification"
	"github.com/bunec-crvs/learning-api/internal/config"
	"github.com/bunec-crvs/learning-api/internal/course"
	"github.com/bunec-crvs/learning-api/internal/progress"
)

var ErrInvalidEvaluation = errors.New("invalid evaluation definition")

// CompletionGate is the slice of the progress service the evaluation flow
// needs: it decides whether a level's lessons are all done.
type CompletionGate interface {
	LevelCompletion(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*progress.LevelCompletion, error)
}

// CertificateIssuer issues (or reuses) the certificate after a passing
// attempt.
type CertificateIssuer interface {
	Issue(ctx context.Context, userID, courseID uuid.UUID, level course.Level, score float64) (*certification.Certification, error)
}

type Service interface {
	Create(ctx context.Context, dto CreateEvaluationDTO) (*EvaluationLevel, error)
	Start(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*EvaluationFormDTO, error)
	Submit(ctx context.Context, userID, courseID uuid.UUID, level course.Level, submission SubmissionDTO) (*ResultDTO, error)
	ListAttempts(ctx context.Context, userID, evaluationID uuid.UUID) ([]Attempt, error)
}

type service struct {
	db    *gorm.DB
	repo  Repository
	gate  CompletionGate
	certs CertificateIssuer
}

func NewService(db *gorm.DB, repo Repository, gate CompletionGate, certs CertificateIssuer) Service {
	return &service{
		db:    db,
		repo:  repo,
		gate:  gate,
		certs: certs,
	}
}

func (s *service) Create(ctx context.Context, dto CreateEvaluationDTO) (*EvaluationLevel, error) {
	log := config.WithContext(ctx)

	if !dto.Level.IsValid() {
		return nil, fmt.Errorf("%w: unknown level %q", ErrInvalidEvaluation, dto.Level)
	}
	if dto.Threshold < 0 || dto.Threshold > 100 {
		return nil, fmt.Errorf("%w: threshold must be within 0-100", ErrInvalidEvaluation)
	}
	if len(dto.Questions) == 0 {
		return nil, fmt.Errorf("%w: at least one question required", ErrInvalidEvaluation)
	}

	eval := &EvaluationLevel{
		CourseID:  dto.CourseID,
		Level:     dto.Level,
		Title:     dto.Title,
		Threshold: dto.Threshold,
		IsActive:  true,
	}
	for _, q := range dto.Questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		question := EvaluationQuestion{
			Text:   q.Text,
			Order:  q.Order,
			Points: points,
		}
		for _, c := range q.Choices {
			question.Choices = append(question.Choices, EvaluationChoice{
				Text:      c.Text,
				IsCorrect: c.IsCorrect,
			})
		}
		eval.Questions = append(eval.Questions, question)
	}

	// A single Create persists the nested questions and choices atomically.
	if err := s.db.WithContext(ctx).Create(eval).Error; err != nil {
		log.WithError(err).Error("Failed to create evaluation")
		return nil, err
	}

	log.WithField("evaluation_id", eval.ID.String()).Info("Evaluation created")
	return eval, nil
}

// Start resolves the evaluation, runs the gate and the attempt policy, and
// returns the quiz form data when the pair is open for a submission.
func (s *service) Start(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*EvaluationFormDTO, error) {
	eval, _, err := s.admit(ctx, userID, courseID, level)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.ListQuestions(eval.ID)
	if err != nil {
		return nil, err
	}

	form := &EvaluationFormDTO{
		EvaluationID: eval.ID,
		CourseID:     eval.CourseID,
		Level:        eval.Level,
		Title:        eval.Title,
		Threshold:    eval.Threshold,
	}
	for _, q := range questions {
		qd := QuestionDTO{
			ID:     q.ID,
			Text:   q.Text,
			Order:  q.Order,
			Points: q.Points,
		}
		for _, c := range q.Choices {
			qd.Choices = append(qd.Choices, ChoiceDTO{ID: c.ID, Text: c.Text})
		}
		form.Questions = append(form.Questions, qd)
	}
	return form, nil
}

// Submit grades a submission. The attempt, its answers and the final score
// are committed in one transaction; certificate issuance happens after the
// commit so an artifact failure never rolls back the graded attempt.
func (s *service) Submit(ctx context.Context, userID, courseID uuid.UUID, level course.Level, submission SubmissionDTO) (*ResultDTO, error) {
	log := config.WithContext(ctx)

	eval, _, err := s.admit(ctx, userID, courseID, level)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.ListQuestions(eval.ID)
	if err != nil {
		return nil, err
	}

	res := grade(questions, parseSubmission(submission))
	passed := passes(res.Percent, eval.Threshold)

	attempt := Attempt{
		UserID:       userID,
		EvaluationID: eval.ID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		for i := range res.Answers {
			res.Answers[i].AttemptID = attempt.ID
		}
		if len(res.Answers) > 0 {
			if err := tx.Create(&res.Answers).Error; err != nil {
				return err
			}
		}
		return tx.Model(&attempt).Updates(map[string]interface{}{
			"score":  res.Percent,
			"passed": passed,
		}).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist graded attempt")
		return nil, err
	}

	result := &ResultDTO{
		Score:  res.Percent,
		Passed: passed,
	}

	if !passed {
		result.Message = fmt.Sprintf("Evaluation failed (%.2f%%). You may try again.", res.Percent)
		log.WithField("attempt_id", attempt.ID.String()).Info("Evaluation attempt failed")
		return result, nil
	}

	cert, err := s.certs.Issue(ctx, userID, courseID, level, res.Percent)
	if err != nil {
		log.WithError(err).Error("Passing attempt recorded but certificate issuance failed")
		return nil, err
	}

	result.Message = fmt.Sprintf("Congratulations! You passed with %.2f%%.", res.Percent)
	result.CertificateCode = cert.Code
	log.WithField("attempt_id", attempt.ID.String()).
		WithField("certificate_code", cert.Code).
		Info("Evaluation passed")
	return result, nil
}

func (s *service) ListAttempts(ctx context.Context, userID, evaluationID uuid.UUID) ([]Attempt, error) {
	return s.repo.ListAttempts(userID, evaluationID)
}

// admit performs the shared gate and policy checks. The returned attempts
// slice reflects the history at check time; the count-then-create sequence
// is not serialized against concurrent submissions from the same user.
func (s *service) admit(ctx context.Context, userID, courseID uuid.UUID, level course.Level) (*EvaluationLevel, []Attempt, error) {
	eval, err := s.repo.FindActive(courseID, level)
	if err != nil {
		return nil, nil, err
	}
	if eval == nil {
		return nil, nil, ErrEvaluationNotFound
	}

	comp, err := s.gate.LevelCompletion(ctx, userID, courseID, level)
	if err != nil {
		return nil, nil, err
	}

	attempts, err := s.repo.ListAttempts(userID, eval.ID)
	if err != nil {
		return nil, nil, err
	}

	if err := statusError(DeriveStatus(comp.Completed, attempts)); err != nil {
		return nil, nil, err
	}
	return eval, attempts, nil
}

// parseSubmission drops malformed ids; per the grading contract those
// questions simply count as unanswered.
func parseSubmission(submission SubmissionDTO) map[uuid.UUID]uuid.UUID {
	parsed := make(map[uuid.UUID]uuid.UUID, len(submission.Answers))
	for qID, cID := range submission.Answers {
		questionID, err := uuid.Parse(qID)
		if err != nil {
			continue
		}
		choiceID, err := uuid.Parse(cID)
		if err != nil {
			continue
		}
		parsed[questionID] = choiceID
	}
	return parsed
}
