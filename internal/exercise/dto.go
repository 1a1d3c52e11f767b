package exercise

import "github.com/google/uuid"

type CreateChoiceDTO struct {
	Text        string  `json:"text"`
	IsCorrect   bool    `json:"is_correct"`
	Order       int     `json:"order"`
	Explanation *string `json:"explanation"`
}

type CreateExerciseDTO struct {
	LessonID uuid.UUID         `json:"lesson_id"`
	Question string            `json:"question"`
	Order    int               `json:"order"`
	Choices  []CreateChoiceDTO `json:"choices"`
}

type SubmitAttemptDTO struct {
	ChoiceID uuid.UUID `json:"choice_id"`
}

// AttemptResultDTO feeds the immediate feedback shown under the question.
type AttemptResultDTO struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}
