package scoring

import (
	"testing"

	"job-intake-backend/models"
	dbmodels "job-intake-backend/models/db"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestGetScorer(t *testing.T) {
	t.Run(`known types resolve`, func(t *testing.T) {
		for _, questionType := range []models.QuestionType{
			models.QuestionTypeText,
			models.QuestionTypeNumber,
			models.QuestionTypeSingleChoice,
			models.QuestionTypeMultiChoice,
		} {
			scorer, err := GetScorer(questionType)
			require.Nil(t, err)
			require.NotNil(t, scorer)
		}
	})

	t.Run(`unknown type fails with config error`, func(t *testing.T) {
		_, err := GetScorer("rating")
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))
	})
}

func TestSingleChoiceScorer(t *testing.T) {
	scorer := singleChoiceScorer{}
	config := dbmodels.ScoringConfig{Points: 10, CorrectOption: "A"}

	t.Run(`correct answer gets full points`, func(t *testing.T) {
		result, err := scorer.Score("A", config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
		require.Equal(t, 10.0, result.MaxScore)
	})

	t.Run(`incorrect answer gets zero`, func(t *testing.T) {
		result, err := scorer.Score("B", config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, 10.0, result.MaxScore)
	})

	t.Run(`match is case-sensitive`, func(t *testing.T) {
		result, err := scorer.Score("a", config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run(`missing correct_option is a config error`, func(t *testing.T) {
		_, err := scorer.Score("A", dbmodels.ScoringConfig{Points: 10})
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))
		require.Equal(t, false, IsSubmissionError(err))
	})
}

func TestMultiChoiceScorer(t *testing.T) {
	scorer := multiChoiceScorer{}
	config := dbmodels.ScoringConfig{Points: 30, CorrectOptions: []string{"A", "B", "C"}}

	t.Run(`all correct answers get full points`, func(t *testing.T) {
		result, err := scorer.Score([]string{"A", "B", "C"}, config)
		require.Nil(t, err)
		require.Equal(t, 30.0, result.Score)
		require.Equal(t, 30.0, result.MaxScore)
	})

	t.Run(`partial intersection gets proportional points`, func(t *testing.T) {
		result, err := scorer.Score([]string{"A", "B"}, config)
		require.Nil(t, err)
		require.Equal(t, 20.0, result.Score)
	})

	t.Run(`wrong extra picks are not penalized`, func(t *testing.T) {
		result, err := scorer.Score([]string{"A", "B", "D", "E"}, config)
		require.Nil(t, err)
		require.Equal(t, 20.0, result.Score)
	})

	t.Run(`duplicates collapse`, func(t *testing.T) {
		result, err := scorer.Score([]string{"A", "A", "B"}, config)
		require.Nil(t, err)
		require.Equal(t, 20.0, result.Score)
	})

	t.Run(`empty answer gets zero`, func(t *testing.T) {
		result, err := scorer.Score([]string{}, config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, 30.0, result.MaxScore)
	})

	t.Run(`all incorrect answers get zero`, func(t *testing.T) {
		result, err := scorer.Score([]string{"D", "E"}, config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run(`json-decoded value is accepted`, func(t *testing.T) {
		result, err := scorer.Score([]interface{}{"A", "C"}, config)
		require.Nil(t, err)
		require.Equal(t, 20.0, result.Score)
	})

	t.Run(`missing correct_options is a config error`, func(t *testing.T) {
		_, err := scorer.Score([]string{"A"}, dbmodels.ScoringConfig{Points: 30})
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))
	})
}

func TestNumberScorer(t *testing.T) {
	scorer := numberScorer{}
	config := dbmodels.ScoringConfig{Points: 10, Min: floatPtr(5), Max: floatPtr(15)}

	t.Run(`value in range gets full points`, func(t *testing.T) {
		result, err := scorer.Score(10.0, config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
	})

	t.Run(`boundaries are inclusive`, func(t *testing.T) {
		result, err := scorer.Score(5.0, config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)

		result, err = scorer.Score(15.0, config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
	})

	t.Run(`value out of range gets zero`, func(t *testing.T) {
		result, err := scorer.Score(4.0, config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)

		result, err = scorer.Score(16.0, config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run(`negative range is supported`, func(t *testing.T) {
		negConfig := dbmodels.ScoringConfig{Points: 10, Min: floatPtr(-10), Max: floatPtr(-5)}
		result, err := scorer.Score(-7.0, negConfig)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)

		result, err = scorer.Score(-3.0, negConfig)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run(`fractional range is supported`, func(t *testing.T) {
		fracConfig := dbmodels.ScoringConfig{Points: 10, Min: floatPtr(0.5), Max: floatPtr(2.5)}
		result, err := scorer.Score(1.5, fracConfig)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
	})

	t.Run(`zero is a valid boundary`, func(t *testing.T) {
		zeroConfig := dbmodels.ScoringConfig{Points: 10, Min: floatPtr(0), Max: floatPtr(0)}
		result, err := scorer.Score(0.0, zeroConfig)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
	})

	t.Run(`missing min or max is a config error`, func(t *testing.T) {
		_, err := scorer.Score(10.0, dbmodels.ScoringConfig{Points: 10, Max: floatPtr(15)})
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))

		_, err = scorer.Score(10.0, dbmodels.ScoringConfig{Points: 10, Min: floatPtr(5)})
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))
	})
}

func TestTextScorer(t *testing.T) {
	scorer := textScorer{}

	t.Run(`all keywords present get full points`, func(t *testing.T) {
		config := dbmodels.ScoringConfig{Points: 10, Keywords: []string{"experience", "leadership", "team"}}
		result, err := scorer.Score("I have experience in leadership and team management", config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
		require.Equal(t, 10.0, result.MaxScore)
	})

	t.Run(`partial match gets proportional points`, func(t *testing.T) {
		config := dbmodels.ScoringConfig{Points: 40, Keywords: []string{"react", "node", "typescript", "graphql"}}
		result, err := scorer.Score("I work with React and TypeScript", config)
		require.Nil(t, err)
		require.Equal(t, 20.0, result.Score)
	})

	t.Run(`match is case-insensitive`, func(t *testing.T) {
		config := dbmodels.ScoringConfig{Points: 10, Keywords: []string{"EXPERIENCE", "Leadership"}}
		result, err := scorer.Score("i have experience in leadership", config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
	})

	t.Run(`keyword matches inside a larger word`, func(t *testing.T) {
		config := dbmodels.ScoringConfig{Points: 10, Keywords: []string{"lead"}}
		result, err := scorer.Score("I am a leader in my field", config)
		require.Nil(t, err)
		require.Equal(t, 10.0, result.Score)
	})

	t.Run(`no keywords matched gets zero`, func(t *testing.T) {
		config := dbmodels.ScoringConfig{Points: 10, Keywords: []string{"experience", "leadership"}}
		result, err := scorer.Score("I like working on projects", config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run(`empty answer gets zero`, func(t *testing.T) {
		config := dbmodels.ScoringConfig{Points: 10, Keywords: []string{"experience"}}
		result, err := scorer.Score("", config)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, 10.0, result.MaxScore)
	})

	t.Run(`empty or missing keywords is a config error`, func(t *testing.T) {
		_, err := scorer.Score("Some answer", dbmodels.ScoringConfig{Points: 10, Keywords: []string{}})
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))

		_, err = scorer.Score("Some answer", dbmodels.ScoringConfig{Points: 10})
		require.NotNil(t, err)
		require.Equal(t, true, IsConfigError(err))
	})
}
