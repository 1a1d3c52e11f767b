package certification

import (
	"time"

	"github.com/bunec-crvs/learning-api/internal/course"
)

// VerificationDTO is the public metadata returned for a certificate code.
type VerificationDTO struct {
	Code        string       `json:"code"`
	HolderName  string       `json:"holder_name"`
	CourseTitle string       `json:"course_title"`
	Level       course.Level `json:"level"`
	IssuedAt    time.Time    `json:"issued_at"`
	IsValid     bool         `json:"is_valid"`
}
