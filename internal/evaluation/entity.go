package evaluation

import (
	"time"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/course"
)

// EvaluationLevel is the quiz gating progression past one level of a
// course. At most one per (course, level).
type EvaluationLevel struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CourseID  uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_course_level" json:"course_id"`
	Level     course.Level `gorm:"type:varchar(20);not null;uniqueIndex:idx_course_level" json:"level"`
	Title     string       `gorm:"not null" json:"title"`
	Threshold int          `gorm:"not null;default:70" json:"threshold"`
	IsActive  bool         `gorm:"not null;default:true" json:"is_active"`

	Questions []EvaluationQuestion `gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type EvaluationQuestion struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EvaluationID uuid.UUID `gorm:"type:uuid;not null;index" json:"evaluation_id"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	Order        int       `gorm:"column:order_index;not null;default:0" json:"order"`
	Points       int       `gorm:"not null;default:1" json:"points"`

	Choices []EvaluationChoice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}

type EvaluationChoice struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"size:255;not null" json:"text"`
	// Never serialized: the quiz form must not leak answers.
	IsCorrect bool `gorm:"not null;default:false" json:"-"`
}

// Attempt is one graded submission. Score and Passed are written during
// grading, in the same transaction that created the row; the row is
// immutable afterwards.
type Attempt struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	EvaluationID uuid.UUID `gorm:"type:uuid;not null;index" json:"evaluation_id"`
	Score        float64   `gorm:"not null" json:"score"`
	Passed       bool      `gorm:"not null;default:false" json:"passed"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// AttemptAnswer records the choice picked for one question of an attempt,
// or nothing when the question was left unanswered.
type AttemptAnswer struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AttemptID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question" json:"attempt_id"`
	QuestionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question" json:"question_id"`
	ChoiceID   *uuid.UUID `gorm:"type:uuid" json:"choice_id,omitempty"`
}
