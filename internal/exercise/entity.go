package exercise

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a single practice question attached to a lesson, separate
// from the level evaluations: unlimited retries, latest answer kept.
type Exercise struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LessonID  uuid.UUID `gorm:"type:uuid;not null;index" json:"lesson_id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Order     int       `gorm:"column:order_index;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Choices []Choice `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}

type Choice struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExerciseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"exercise_id"`
	Text        string    `gorm:"size:500;not null" json:"text"`
	IsCorrect   bool      `gorm:"not null;default:false" json:"-"`
	Order       int       `gorm:"column:order_index;not null;default:0" json:"order"`
	Explanation *string   `gorm:"type:text" json:"-"`
}

// UserExerciseAttempt keeps the latest answer per (user, exercise).
type UserExerciseAttempt struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_exercise" json:"user_id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_exercise" json:"exercise_id"`
	ChoiceID   uuid.UUID `gorm:"type:uuid;not null" json:"choice_id"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
