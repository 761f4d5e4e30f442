package applicationapimodels

import (
	"job-intake-backend/models"
	apimodels "job-intake-backend/models/api"
	dbmodels "job-intake-backend/models/db"
	"net/mail"
	"time"

	"github.com/pkg/errors"
)

type ApplicationAnswer struct {
	QuestionID string      `json:"question_id"`
	Value      interface{} `json:"value"` // string | number | []string, зависит от типа вопроса
}

type ApplicationData struct {
	CandidateName  string              `json:"candidate_name"`
	CandidateEmail string              `json:"candidate_email"`
	Answers        []ApplicationAnswer `json:"answers"`
}

func (d ApplicationData) Validate() error {
	if len(d.CandidateName) < 2 || len(d.CandidateName) > 100 {
		return errors.New("имя кандидата должно содержать от 2 до 100 символов")
	}
	if len(d.CandidateEmail) > 255 {
		return errors.New("email кандидата не должен превышать 255 символов")
	}
	if _, err := mail.ParseAddress(d.CandidateEmail); err != nil {
		return errors.New("некорректный email кандидата")
	}
	return nil
}

type ApplicationFilter struct {
	apimodels.Pagination
	SortBy models.ApplicationSortField `json:"sort_by"`
	Order  models.SortOrder            `json:"order"`
}

func (f *ApplicationFilter) Validate() error {
	if f.SortBy == "" {
		f.SortBy = models.ApplicationSortFieldScore
	}
	if f.Order == "" {
		f.Order = models.SortOrderDesc
	}
	if !f.SortBy.IsValid() {
		return errors.Errorf("недопустимое поле сортировки: %v", f.SortBy)
	}
	if !f.Order.IsValid() {
		return errors.Errorf("недопустимое направление сортировки: %v", f.Order)
	}
	return nil
}

type ApplicationView struct {
	ID              string                 `json:"id"`
	JobID           string                 `json:"job_id"`
	CandidateName   string                 `json:"candidate_name"`
	CandidateEmail  string                 `json:"candidate_email"`
	TotalScore      float64                `json:"total_score"`
	MaxScore        float64                `json:"max_score"`
	ScorePercentage float64                `json:"score_percentage"`
	Answers         []dbmodels.AnswerScore `json:"answers"`
	CreatedAt       time.Time              `json:"created_at"`
}

// Элемент списка откликов, без детализации по вопросам
type ApplicationListItem struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	CandidateName   string    `json:"candidate_name"`
	CandidateEmail  string    `json:"candidate_email"`
	TotalScore      float64   `json:"total_score"`
	MaxScore        float64   `json:"max_score"`
	ScorePercentage float64   `json:"score_percentage"`
	CreatedAt       time.Time `json:"created_at"`
}
