package exercise

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(e *Exercise) error
	FindByID(id uuid.UUID) (*Exercise, error)
	ListByLesson(lessonID uuid.UUID) ([]Exercise, error)
	UpsertAttempt(attempt *UserExerciseAttempt) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *Exercise) error {
	return r.db.Create(e).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Exercise, error) {
	var e Exercise
	err := r.db.
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListByLesson(lessonID uuid.UUID) ([]Exercise, error) {
	var exercises []Exercise
	err := r.db.
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("lesson_id = ?", lessonID).
		Order("order_index ASC").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// UpsertAttempt replaces the previous answer of the same user on the same
// exercise.
func (r *repository) UpsertAttempt(attempt *UserExerciseAttempt) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "exercise_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"choice_id", "is_correct", "updated_at"}),
	}).Create(attempt).Error
}
