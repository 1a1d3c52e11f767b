package progress

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgress records that a user finished a lesson. One row per
// (user, lesson).
type LessonProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_lesson" json:"user_id"`
	LessonID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_lesson" json:"lesson_id"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
