package scoring

import (
	"testing"

	"job-intake-backend/models"
	dbmodels "job-intake-backend/models/db"

	"github.com/stretchr/testify/require"
)

func testQuestions() []dbmodels.Question {
	return []dbmodels.Question{
		{
			BaseModel: dbmodels.BaseModel{ID: "q1"},
			Text:      "Опишите ваш опыт разработки",
			Type:      models.QuestionTypeText,
			Scoring:   dbmodels.ScoringConfig{Points: 40, Keywords: []string{"react", "node", "typescript", "graphql"}},
		},
		{
			BaseModel: dbmodels.BaseModel{ID: "q2"},
			Text:      "Сколько лет опыта разработки?",
			Type:      models.QuestionTypeNumber,
			Scoring:   dbmodels.ScoringConfig{Points: 15, Min: floatPtr(3), Max: floatPtr(10)},
		},
		{
			BaseModel: dbmodels.BaseModel{ID: "q3"},
			Text:      "Предпочитаемая СУБД?",
			Type:      models.QuestionTypeSingleChoice,
			Options:   dbmodels.StringArray{"PostgreSQL", "MongoDB", "MySQL"},
			Scoring:   dbmodels.ScoringConfig{Points: 10, CorrectOption: "PostgreSQL"},
		},
		{
			BaseModel: dbmodels.BaseModel{ID: "q4"},
			Text:      "Какими языками владеете?",
			Type:      models.QuestionTypeMultiChoice,
			Options:   dbmodels.StringArray{"TypeScript", "Python", "Java", "Go"},
			Scoring:   dbmodels.ScoringConfig{Points: 30, CorrectOptions: []string{"TypeScript", "Python", "Go"}},
		},
	}
}

func testAnswers() []Answer {
	return []Answer{
		{QuestionID: "q1", Value: "I work with React and TypeScript"},
		{QuestionID: "q2", Value: 5.0},
		{QuestionID: "q3", Value: "PostgreSQL"},
		{QuestionID: "q4", Value: []string{"TypeScript", "Go", "Java"}},
	}
}

func TestValidateAnswers(t *testing.T) {
	questions := testQuestions()

	t.Run(`valid submission passes`, func(t *testing.T) {
		err := ValidateAnswers(questions, testAnswers())
		require.Nil(t, err)
	})

	t.Run(`answer count mismatch reports both counts`, func(t *testing.T) {
		err := ValidateAnswers(questions[:1], []Answer{})
		require.NotNil(t, err)
		require.Equal(t, true, IsSubmissionError(err))
		require.Equal(t, "Expected 1 answers, but received 0", err.Error())
	})

	t.Run(`unknown question id is named in the message`, func(t *testing.T) {
		answers := testAnswers()
		answers[2].QuestionID = "q42"
		err := ValidateAnswers(questions, answers)
		require.NotNil(t, err)
		require.Equal(t, true, IsSubmissionError(err))
		require.Equal(t, "Question with ID q42 not found in this job", err.Error())
	})

	t.Run(`wrong value shapes are rejected per type`, func(t *testing.T) {
		cases := []struct {
			questionID string
			value      interface{}
			message    string
		}{
			{"q1", 7.0, "Text answer must be a string"},
			{"q2", "five", "Number answer must be a number"},
			{"q3", []string{"PostgreSQL"}, "Single choice answer must be a string"},
			{"q4", "TypeScript", "Multi choice answer must be an array of strings"},
			{"q4", []interface{}{"TypeScript", 1.0}, "Multi choice answer must be an array of strings"},
		}
		for _, c := range cases {
			answers := testAnswers()
			for k := range answers {
				if answers[k].QuestionID == c.questionID {
					answers[k].Value = c.value
				}
			}
			err := ValidateAnswers(questions, answers)
			require.NotNil(t, err)
			require.Equal(t, true, IsSubmissionError(err))
			require.Equal(t, c.message, err.Error())
		}
	})

	t.Run(`empty multi choice array is shape-valid`, func(t *testing.T) {
		answers := testAnswers()
		answers[3].Value = []string{}
		err := ValidateAnswers(questions, answers)
		require.Nil(t, err)
	})

	t.Run(`unlisted choice value passes validation`, func(t *testing.T) {
		// принадлежность ответа списку options не проверяется,
		// такой ответ просто оценивается как неправильный
		answers := testAnswers()
		answers[2].Value = "Oracle"
		err := ValidateAnswers(questions, answers)
		require.Nil(t, err)
	})

	t.Run(`unknown question type is a config error`, func(t *testing.T) {
		badQuestions := testQuestions()
		badQuestions[0].Type = "rating"
		err := ValidateAnswers(badQuestions, testAnswers())
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))
		require.Equal(t, false, IsSubmissionError(err))
	})
}

func TestScoreAnswers(t *testing.T) {
	t.Run(`breakdown preserves submission order and snapshots question text`, func(t *testing.T) {
		questions := testQuestions()
		breakdown, err := ScoreAnswers(questions, testAnswers())
		require.Nil(t, err)
		require.Equal(t, 4, len(breakdown))

		require.Equal(t, "q1", breakdown[0].QuestionID)
		require.Equal(t, "Опишите ваш опыт разработки", breakdown[0].QuestionText)
		require.Equal(t, 20.0, breakdown[0].Score) // 2 из 4 ключевых слов
		require.Equal(t, 40.0, breakdown[0].MaxScore)

		require.Equal(t, "q2", breakdown[1].QuestionID)
		require.Equal(t, 15.0, breakdown[1].Score)

		require.Equal(t, "q3", breakdown[2].QuestionID)
		require.Equal(t, 10.0, breakdown[2].Score)

		require.Equal(t, "q4", breakdown[3].QuestionID)
		require.Equal(t, 20.0, breakdown[3].Score) // 2 из 3 правильных вариантов
		require.Equal(t, 30.0, breakdown[3].MaxScore)
	})

	t.Run(`answer value is echoed in the breakdown`, func(t *testing.T) {
		breakdown, err := ScoreAnswers(testQuestions(), testAnswers())
		require.Nil(t, err)
		require.Equal(t, "I work with React and TypeScript", breakdown[0].Answer)
		require.Equal(t, []string{"TypeScript", "Go", "Java"}, breakdown[3].Answer)
	})

	t.Run(`scoring is deterministic`, func(t *testing.T) {
		first, err := ScoreAnswers(testQuestions(), testAnswers())
		require.Nil(t, err)
		second, err := ScoreAnswers(testQuestions(), testAnswers())
		require.Nil(t, err)
		require.Equal(t, first, second)
	})

	t.Run(`validation fault stops scoring`, func(t *testing.T) {
		breakdown, err := ScoreAnswers(testQuestions(), testAnswers()[:2])
		require.NotNil(t, err)
		require.Nil(t, breakdown)
		require.Equal(t, true, IsSubmissionError(err))
	})

	t.Run(`config fault stops scoring without partial result`, func(t *testing.T) {
		questions := testQuestions()
		questions[2].Scoring = dbmodels.ScoringConfig{Points: 10}
		breakdown, err := ScoreAnswers(questions, testAnswers())
		require.NotNil(t, err)
		require.Nil(t, breakdown)
		require.Equal(t, true, IsConfigError(err))
	})
}

func TestAggregate(t *testing.T) {
	t.Run(`totals are sums over the breakdown`, func(t *testing.T) {
		breakdown, err := ScoreAnswers(testQuestions(), testAnswers())
		require.Nil(t, err)
		totalScore, maxScore := Aggregate(breakdown)
		require.Equal(t, 65.0, totalScore)
		require.Equal(t, 95.0, maxScore)
	})

	t.Run(`percentage rounds to 2 decimals`, func(t *testing.T) {
		require.Equal(t, 50.0, Percentage(5, 10))
		require.Equal(t, 68.42, Percentage(65, 95))
		require.Equal(t, 33.33, Percentage(1, 3))
	})

	t.Run(`zero max score gives zero percentage`, func(t *testing.T) {
		require.Equal(t, 0.0, Percentage(0, 0))
	})
}
