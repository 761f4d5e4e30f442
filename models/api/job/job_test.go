package jobapimodels

import (
	"testing"

	"job-intake-backend/models"
	dbmodels "job-intake-backend/models/db"

	"github.com/stretchr/testify/require"
)

func validJobData() JobData {
	min := 1.0
	max := 5.0
	return JobData{
		Title:       "Backend разработчик",
		Location:    "Москва",
		Customer:    "ООО Ромашка",
		JobName:     "BE-001",
		Description: "Разработка бэкенда на Go",
		Questions: []QuestionData{
			{
				Text:    "Опыт работы, лет",
				Type:    models.QuestionTypeNumber,
				Scoring: dbmodels.ScoringConfig{Points: 10, Min: &min, Max: &max},
			},
			{
				Text:    "Основной язык",
				Type:    models.QuestionTypeSingleChoice,
				Options: []string{"Go", "Python"},
				Scoring: dbmodels.ScoringConfig{Points: 5, CorrectOption: "Go"},
			},
		},
	}
}

func TestJobDataValidate(t *testing.T) {
	t.Run(`valid data check`, func(t *testing.T) {
		data := validJobData()
		require.NoError(t, data.Validate())
	})

	t.Run(`title too short check`, func(t *testing.T) {
		data := validJobData()
		data.Title = "ab"
		require.Error(t, data.Validate())
	})

	t.Run(`no questions check`, func(t *testing.T) {
		data := validJobData()
		data.Questions = nil
		require.Error(t, data.Validate())
	})

	t.Run(`unknown question type check`, func(t *testing.T) {
		data := validJobData()
		data.Questions[0].Type = "unknown"
		require.Error(t, data.Validate())
	})

	t.Run(`choice question without options check`, func(t *testing.T) {
		data := validJobData()
		data.Questions[1].Options = nil
		require.Error(t, data.Validate())
	})

	t.Run(`number question without bounds check`, func(t *testing.T) {
		data := validJobData()
		data.Questions[0].Scoring.Min = nil
		require.Error(t, data.Validate())
	})

	t.Run(`zero points check`, func(t *testing.T) {
		data := validJobData()
		data.Questions[0].Scoring.Points = 0
		require.Error(t, data.Validate())
	})
}

func TestJobFilterValidate(t *testing.T) {
	t.Run(`defaults check`, func(t *testing.T) {
		filter := JobFilter{}
		require.NoError(t, filter.Validate())
		require.Equal(t, models.JobSortFieldCreatedAt, filter.SortBy)
		require.Equal(t, models.SortOrderDesc, filter.Order)
	})

	t.Run(`invalid sort field check`, func(t *testing.T) {
		filter := JobFilter{SortBy: "title"}
		require.Error(t, filter.Validate())
	})
}

func TestJobConvertPublic(t *testing.T) {
	t.Run(`scoring config hidden check`, func(t *testing.T) {
		rec := validJobData().ToRecord()
		view := JobConvertPublic(rec)
		require.Len(t, view.Questions, 2)
		for _, question := range view.Questions {
			require.NotEmpty(t, question.Text)
		}
	})
}
