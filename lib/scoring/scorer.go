package scoring

import (
	"job-intake-backend/models"
	dbmodels "job-intake-backend/models/db"
	"strings"
)

type Result struct {
	Score    float64
	MaxScore float64
}

// Scorer считает баллы за ответ по настройке вопроса.
// Реализации не хранят состояния, value к моменту вызова прошёл проверку формы.
type Scorer interface {
	Score(value interface{}, config dbmodels.ScoringConfig) (Result, error)
}

var scorers = map[models.QuestionType]Scorer{
	models.QuestionTypeText:         textScorer{},
	models.QuestionTypeNumber:       numberScorer{},
	models.QuestionTypeSingleChoice: singleChoiceScorer{},
	models.QuestionTypeMultiChoice:  multiChoiceScorer{},
}

func GetScorer(questionType models.QuestionType) (Scorer, error) {
	scorer, ok := scorers[questionType]
	if !ok {
		return nil, NewConfigError("unknown question type: %s", questionType)
	}
	return scorer, nil
}

type singleChoiceScorer struct{}

func (s singleChoiceScorer) Score(value interface{}, config dbmodels.ScoringConfig) (Result, error) {
	if config.CorrectOption == "" {
		return Result{}, NewConfigError("scoring config is missing correct_option for single_choice question")
	}
	maxScore := config.Points
	answer, _ := value.(string)
	if answer == config.CorrectOption {
		return Result{Score: maxScore, MaxScore: maxScore}, nil
	}
	return Result{Score: 0, MaxScore: maxScore}, nil
}

type multiChoiceScorer struct{}

func (s multiChoiceScorer) Score(value interface{}, config dbmodels.ScoringConfig) (Result, error) {
	if len(config.CorrectOptions) == 0 {
		return Result{}, NewConfigError("scoring config is missing correct_options for multi_choice question")
	}
	maxScore := config.Points
	answers, _ := toStringSlice(value)

	correctSet := make(map[string]struct{}, len(config.CorrectOptions))
	for _, option := range config.CorrectOptions {
		correctSet[option] = struct{}{}
	}
	answerSet := make(map[string]struct{}, len(answers))
	for _, answer := range answers {
		answerSet[answer] = struct{}{}
	}
	if len(answerSet) == 0 {
		return Result{Score: 0, MaxScore: maxScore}, nil
	}

	matched := 0
	for answer := range answerSet {
		if _, ok := correctSet[answer]; ok {
			matched++
		}
	}
	// лишние неправильные варианты не штрафуются
	score := float64(matched) / float64(len(correctSet)) * maxScore
	return Result{Score: score, MaxScore: maxScore}, nil
}

type numberScorer struct{}

func (s numberScorer) Score(value interface{}, config dbmodels.ScoringConfig) (Result, error) {
	if config.Min == nil || config.Max == nil {
		return Result{}, NewConfigError("scoring config is missing min/max for number question")
	}
	maxScore := config.Points
	answer, _ := toNumber(value)
	// границы включительно
	if answer >= *config.Min && answer <= *config.Max {
		return Result{Score: maxScore, MaxScore: maxScore}, nil
	}
	return Result{Score: 0, MaxScore: maxScore}, nil
}

type textScorer struct{}

func (s textScorer) Score(value interface{}, config dbmodels.ScoringConfig) (Result, error) {
	if len(config.Keywords) == 0 {
		return Result{}, NewConfigError("scoring config is missing keywords for text question")
	}
	maxScore := config.Points
	answer, _ := value.(string)
	answerLower := strings.ToLower(answer)

	matched := 0
	for _, keyword := range config.Keywords {
		if strings.Contains(answerLower, strings.ToLower(keyword)) {
			matched++
		}
	}
	score := float64(matched) / float64(len(config.Keywords)) * maxScore
	return Result{Score: score, MaxScore: maxScore}, nil
}
