package scoring

import (
	"job-intake-backend/models"
	dbmodels "job-intake-backend/models/db"
)

// Answer - ответ кандидата на один вопрос
type Answer struct {
	QuestionID string
	Value      interface{}
}

// ValidateAnswers проверяет отклик до расчёта баллов: количество ответов
// должно совпадать с количеством вопросов, каждый ответ ссылаться на вопрос
// вакансии, форма значения соответствовать типу вопроса.
// Первая ошибка прерывает проверку, частичная оценка не выполняется.
func ValidateAnswers(questions []dbmodels.Question, answers []Answer) error {
	if len(answers) != len(questions) {
		return NewSubmissionError("Expected %d answers, but received %d", len(questions), len(answers))
	}
	questionMap := buildQuestionMap(questions)
	for _, answer := range answers {
		question, ok := questionMap[answer.QuestionID]
		if !ok {
			return NewSubmissionError("Question with ID %s not found in this job", answer.QuestionID)
		}
		if err := validateAnswerShape(answer.Value, question.Type); err != nil {
			return err
		}
	}
	return nil
}

func buildQuestionMap(questions []dbmodels.Question) map[string]dbmodels.Question {
	questionMap := make(map[string]dbmodels.Question, len(questions))
	for _, question := range questions {
		questionMap[question.ID] = question
	}
	return questionMap
}

func validateAnswerShape(value interface{}, questionType models.QuestionType) error {
	switch questionType {
	case models.QuestionTypeSingleChoice:
		if _, ok := value.(string); !ok {
			return NewSubmissionError("Single choice answer must be a string")
		}
	case models.QuestionTypeMultiChoice:
		if _, ok := toStringSlice(value); !ok {
			return NewSubmissionError("Multi choice answer must be an array of strings")
		}
	case models.QuestionTypeNumber:
		if _, ok := toNumber(value); !ok {
			return NewSubmissionError("Number answer must be a number")
		}
	case models.QuestionTypeText:
		if _, ok := value.(string); !ok {
			return NewSubmissionError("Text answer must be a string")
		}
	default:
		return NewConfigError("unknown question type: %s", questionType)
	}
	return nil
}

// значение после json-декодирования приходит как []interface{},
// при прямом вызове из Go кода допускается []string
func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, str)
		}
		return result, true
	}
	return nil, false
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
