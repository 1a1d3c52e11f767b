package evaluation

import (
	"math"

	"github.com/google/uuid"
)

// passes classifies a graded percentage against the evaluation threshold.
// A score exactly at the threshold passes.
func passes(percent float64, threshold int) bool {
	return percent >= float64(threshold)
}

type gradeResult struct {
	Percent float64
	Earned  int
	Total   int
	Answers []AttemptAnswer
}

// grade scores a submission against the loaded questions. A submitted
// choice is only credited when it belongs to the question it was submitted
// under; unknown or foreign choice ids are recorded as unanswered. A
// question with any selected correct choice earns its full point weight,
// there is no partial credit.
func grade(questions []EvaluationQuestion, submitted map[uuid.UUID]uuid.UUID) gradeResult {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	if total == 0 {
		// avoids dividing by zero on an evaluation with no questions
		total = 1
	}

	earned := 0
	answers := make([]AttemptAnswer, 0, len(questions))
	for _, q := range questions {
		var chosen *EvaluationChoice
		if choiceID, ok := submitted[q.ID]; ok {
			for i := range q.Choices {
				if q.Choices[i].ID == choiceID {
					chosen = &q.Choices[i]
					break
				}
			}
		}

		answer := AttemptAnswer{QuestionID: q.ID}
		if chosen != nil {
			id := chosen.ID
			answer.ChoiceID = &id
			if chosen.IsCorrect {
				earned += q.Points
			}
		}
		answers = append(answers, answer)
	}

	percent := math.Round(float64(earned)/float64(total)*100*100) / 100

	return gradeResult{
		Percent: percent,
		Earned:  earned,
		Total:   total,
		Answers: answers,
	}
}
