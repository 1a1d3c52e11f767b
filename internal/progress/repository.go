package progress

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	MarkCompleted(userID, lessonID uuid.UUID) error
	CountCompleted(userID uuid.UUID, lessonIDs []uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) MarkCompleted(userID, lessonID uuid.UUID) error {
	now := time.Now()
	row := LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		IsCompleted: true,
		CompletedAt: &now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_completed", "completed_at"}),
	}).Create(&row).Error
}

func (r *repository) CountCompleted(userID uuid.UUID, lessonIDs []uuid.UUID) (int64, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&LessonProgress{}).
		Where("user_id = ? AND lesson_id IN ? AND is_completed = ?", userID, lessonIDs, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
