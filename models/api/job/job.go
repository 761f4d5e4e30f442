package jobapimodels

import (
	"job-intake-backend/models"
	apimodels "job-intake-backend/models/api"
	dbmodels "job-intake-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type QuestionData struct {
	Text    string                 `json:"text"`
	Type    models.QuestionType    `json:"type"`
	Options []string               `json:"options,omitempty"`
	Scoring dbmodels.ScoringConfig `json:"scoring"`
}

type JobData struct {
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Customer    string         `json:"customer"`
	JobName     string         `json:"job_name"`
	Description string         `json:"description"`
	Questions   []QuestionData `json:"questions"`
}

func (d JobData) Validate() error {
	if len(d.Title) < 3 || len(d.Title) > 200 {
		return errors.New("название вакансии должно содержать от 3 до 200 символов")
	}
	if len(d.Location) < 1 || len(d.Location) > 100 {
		return errors.New("не указано расположение вакансии")
	}
	if len(d.Customer) < 1 || len(d.Customer) > 100 {
		return errors.New("не указан заказчик вакансии")
	}
	if len(d.JobName) < 1 || len(d.JobName) > 100 {
		return errors.New("не указан код вакансии")
	}
	if len(d.Description) < 10 || len(d.Description) > 5000 {
		return errors.New("описание вакансии должно содержать от 10 до 5000 символов")
	}
	if len(d.Questions) == 0 {
		return errors.New("в вакансии должен быть хотя бы один вопрос")
	}
	for k, question := range d.Questions {
		if err := question.Validate(); err != nil {
			return errors.Wrapf(err, "некорректный вопрос №%v", k+1)
		}
	}
	return nil
}

// Проверка соответствия настройки оценки типу вопроса,
// чтобы некорректная настройка не попала в хранилище
func (q QuestionData) Validate() error {
	if q.Text == "" {
		return errors.New("не указан текст вопроса")
	}
	if !q.Type.IsValid() {
		return errors.Errorf("неизвестный тип вопроса: %v", q.Type)
	}
	if q.Type.HasOptions() && len(q.Options) == 0 {
		return errors.New("не указаны варианты ответа")
	}
	if q.Scoring.Points <= 0 {
		return errors.New("не указано количество баллов за вопрос")
	}
	switch q.Type {
	case models.QuestionTypeText:
		if len(q.Scoring.Keywords) == 0 {
			return errors.New("не указаны ключевые слова для оценки")
		}
	case models.QuestionTypeNumber:
		if q.Scoring.Min == nil || q.Scoring.Max == nil {
			return errors.New("не указаны границы диапазона для оценки")
		}
	case models.QuestionTypeSingleChoice:
		if q.Scoring.CorrectOption == "" {
			return errors.New("не указан правильный вариант ответа")
		}
	case models.QuestionTypeMultiChoice:
		if len(q.Scoring.CorrectOptions) == 0 {
			return errors.New("не указаны правильные варианты ответа")
		}
	}
	return nil
}

type JobFilter struct {
	apimodels.Pagination
	SortBy models.JobSortField `json:"sort_by"`
	Order  models.SortOrder    `json:"order"`
}

func (f *JobFilter) Validate() error {
	if f.SortBy == "" {
		f.SortBy = models.JobSortFieldCreatedAt
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

type QuestionView struct {
	ID      string                 `json:"id"`
	Text    string                 `json:"text"`
	Type    models.QuestionType    `json:"type"`
	Options []string               `json:"options,omitempty"`
	Scoring dbmodels.ScoringConfig `json:"scoring"`
}

type JobView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Customer    string         `json:"customer"`
	JobName     string         `json:"job_name"`
	Description string         `json:"description"`
	Questions   []QuestionView `json:"questions"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Публичное представление для кандидата, без настроек оценки
type PublicQuestionView struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Type    models.QuestionType `json:"type"`
	Options []string            `json:"options,omitempty"`
}

type PublicJobView struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Location    string               `json:"location"`
	Description string               `json:"description"`
	Questions   []PublicQuestionView `json:"questions"`
}

func JobConvert(rec dbmodels.Job) JobView {
	view := JobView{
		ID:          rec.ID,
		Title:       rec.Title,
		Location:    rec.Location,
		Customer:    rec.Customer,
		JobName:     rec.JobName,
		Description: rec.Description,
		Questions:   make([]QuestionView, 0, len(rec.Questions)),
		CreatedAt:   rec.CreatedAt,
	}
	for _, question := range rec.Questions {
		view.Questions = append(view.Questions, QuestionView{
			ID:      question.ID,
			Text:    question.Text,
			Type:    question.Type,
			Options: question.Options,
			Scoring: question.Scoring,
		})
	}
	return view
}

func JobConvertPublic(rec dbmodels.Job) PublicJobView {
	view := PublicJobView{
		ID:          rec.ID,
		Title:       rec.Title,
		Location:    rec.Location,
		Description: rec.Description,
		Questions:   make([]PublicQuestionView, 0, len(rec.Questions)),
	}
	for _, question := range rec.Questions {
		view.Questions = append(view.Questions, PublicQuestionView{
			ID:      question.ID,
			Text:    question.Text,
			Type:    question.Type,
			Options: question.Options,
		})
	}
	return view
}

func (d JobData) ToRecord() dbmodels.Job {
	rec := dbmodels.Job{
		Title:       d.Title,
		Location:    d.Location,
		Customer:    d.Customer,
		JobName:     d.JobName,
		Description: d.Description,
		Questions:   make([]dbmodels.Question, 0, len(d.Questions)),
	}
	for _, question := range d.Questions {
		rec.Questions = append(rec.Questions, dbmodels.Question{
			Text:    question.Text,
			Type:    question.Type,
			Options: question.Options,
			Scoring: question.Scoring,
		})
	}
	return rec
}
