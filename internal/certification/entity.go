package certification

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/course"
	"github.com/bunec-crvs/learning-api/internal/user"
)

// Certification is the durable proof of passing one course level. The
// (user, course, level) triple is unique: a learner holds at most one
// certificate per level, no matter how the passing attempt was reached.
type Certification struct {
	ID       uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_course_level" json:"user_id"`
	CourseID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_user_course_level" json:"course_id"`
	Level    course.Level `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_course_level" json:"level"`
	Code     string       `gorm:"size:64;not null;uniqueIndex" json:"code"`
	PDFPath  string       `gorm:"column:pdf_path" json:"pdf_path,omitempty"`
	IssuedAt time.Time    `gorm:"autoCreateTime" json:"issued_at"`
	IsValid  bool         `gorm:"not null;default:true" json:"is_valid"`

	User   user.User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course course.Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// newCode returns the compact opaque certificate code. Global uniqueness
// is enforced by the unique index on the column, not by generation alone.
func newCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
