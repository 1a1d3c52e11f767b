package evaluation

import (
	"github.com/google/uuid"

	"github.com/bunec-crvs/learning-api/internal/course"
)

type CreateChoiceDTO struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateQuestionDTO struct {
	Text    string            `json:"text"`
	Order   int               `json:"order"`
	Points  int               `json:"points"`
	Choices []CreateChoiceDTO `json:"choices"`
}

type CreateEvaluationDTO struct {
	CourseID  uuid.UUID           `json:"course_id"`
	Level     course.Level        `json:"level"`
	Title     string              `json:"title"`
	Threshold int                 `json:"threshold"`
	Questions []CreateQuestionDTO `json:"questions"`
}

type ChoiceDTO struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type QuestionDTO struct {
	ID      uuid.UUID   `json:"id"`
	Text    string      `json:"text"`
	Order   int         `json:"order"`
	Points  int         `json:"points"`
	Choices []ChoiceDTO `json:"choices"`
}

// EvaluationFormDTO is what the quiz form renders from. Choices carry no
// correctness information.
type EvaluationFormDTO struct {
	EvaluationID uuid.UUID     `json:"evaluation_id"`
	CourseID     uuid.UUID     `json:"course_id"`
	Level        course.Level  `json:"level"`
	Title        string        `json:"title"`
	Threshold    int           `json:"threshold"`
	Questions    []QuestionDTO `json:"questions"`
}

// SubmissionDTO maps question id to the selected choice id. Unlisted
// questions count as unanswered.
type SubmissionDTO struct {
	Answers map[string]string `json:"answers"`
}

type ResultDTO struct {
	Score           float64 `json:"score"`
	Passed          bool    `json:"passed"`
	Message         string  `json:"message"`
	CertificateCode string  `json:"certificate_code,omitempty"`
}
