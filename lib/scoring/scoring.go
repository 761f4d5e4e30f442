package scoring

import (
	"job-intake-backend/lib/utils/helpers"
	dbmodels "job-intake-backend/models/db"
)

// ScoreAnswers оценивает отклик целиком: сначала проверка, затем расчёт
// баллов по каждому ответу в порядке подачи. Текст вопроса фиксируется в
// детализации на момент оценки. Любая ошибка прерывает оценку без
// частичного результата.
func ScoreAnswers(questions []dbmodels.Question, answers []Answer) ([]dbmodels.AnswerScore, error) {
	if err := ValidateAnswers(questions, answers); err != nil {
		return nil, err
	}
	questionMap := buildQuestionMap(questions)
	breakdown := make([]dbmodels.AnswerScore, 0, len(answers))
	for _, answer := range answers {
		question := questionMap[answer.QuestionID]
		scorer, err := GetScorer(question.Type)
		if err != nil {
			return nil, err
		}
		result, err := scorer.Score(answer.Value, question.Scoring)
		if err != nil {
			return nil, err
		}
		breakdown = append(breakdown, dbmodels.AnswerScore{
			QuestionID:   question.ID,
			QuestionText: question.Text,
			Answer:       answer.Value,
			Score:        result.Score,
			MaxScore:     result.MaxScore,
		})
	}
	return breakdown, nil
}

func Aggregate(breakdown []dbmodels.AnswerScore) (totalScore, maxScore float64) {
	for _, entry := range breakdown {
		totalScore += entry.Score
		maxScore += entry.MaxScore
	}
	return totalScore, maxScore
}

// Percentage возвращает процент набранных баллов, округлённый до 2 знаков,
// 0 если максимум баллов нулевой
func Percentage(totalScore, maxScore float64) float64 {
	if maxScore <= 0 {
		return 0
	}
	return helpers.Round2(totalScore / maxScore * 100)
}
