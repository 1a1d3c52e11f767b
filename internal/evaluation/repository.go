package evaluation

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunec-crvs/learning-api/internal/course"
)

type Repository interface {
	FindActive(courseID uuid.UUID, level course.Level) (*EvaluationLevel, error)
	FindByID(id uuid.UUID) (*EvaluationLevel, error)
	ListQuestions(evaluationID uuid.UUID) ([]EvaluationQuestion, error)
	ListAttempts(userID, evaluationID uuid.UUID) ([]Attempt, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActive(courseID uuid.UUID, level course.Level) (*EvaluationLevel, error) {
	var eval EvaluationLevel
	err := r.db.
		Where("course_id = ? AND level = ? AND is_active = ?", courseID, level, true).
		First(&eval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eval, nil
}

func (r *repository) FindByID(id uuid.UUID) (*EvaluationLevel, error) {
	var eval EvaluationLevel
	if err := r.db.First(&eval, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &eval, nil
}

func (r *repository) ListQuestions(evaluationID uuid.UUID) ([]EvaluationQuestion, error) {
	var questions []EvaluationQuestion
	err := r.db.
		Preload("Choices").
		Where("evaluation_id = ?", evaluationID).
		Order("order_index ASC, id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) ListAttempts(userID, evaluationID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	err := r.db.
		Where("user_id = ? AND evaluation_id = ?", userID, evaluationID).
		Order("created_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
