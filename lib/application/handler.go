package application

import (
	"bytes"
	"job-intake-backend/db"
	applicationstore "job-intake-backend/lib/application/store"
	pdfexport "job-intake-backend/lib/export/pdf"
	xlsexport "job-intake-backend/lib/export/xls"
	jobstore "job-intake-backend/lib/job/store"
	"job-intake-backend/lib/scoring"
	applicationapimodels "job-intake-backend/models/api/application"
	dbmodels "job-intake-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(jobID string, payload applicationapimodels.ApplicationData) (view *applicationapimodels.ApplicationView, hMsg string, err error)
	GetByID(id string) (*applicationapimodels.ApplicationView, error)
	ListByJob(jobID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationListItem, rowCount int64, err error)
	ExportByJob(jobID string) (*bytes.Buffer, error)
	Scorecard(id string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    applicationstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    applicationstore.Provider
	jobStore jobstore.Provider
}

func (i impl) Create(jobID string, payload applicationapimodels.ApplicationData) (*applicationapimodels.ApplicationView, string, error) {
	jobRec, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения вакансии")
	}
	if jobRec == nil {
		return nil, "вакансия не найдена", nil
	}

	answers := make([]scoring.Answer, 0, len(payload.Answers))
	for _, answer := range payload.Answers {
		answers = append(answers, scoring.Answer{
			QuestionID: answer.QuestionID,
			Value:      answer.Value,
		})
	}

	breakdown, err := scoring.ScoreAnswers(jobRec.Questions, answers)
	if err != nil {
		if scoring.IsSubmissionError(err) {
			// ошибка в данных кандидата, возвращаем как сообщение для исправления
			return nil, err.Error(), nil
		}
		return nil, "", errors.Wrap(err, "ошибка оценки отклика")
	}
	totalScore, maxScore := scoring.Aggregate(breakdown)

	rec := dbmodels.Application{
		JobID:          jobID,
		CandidateName:  payload.CandidateName,
		CandidateEmail: payload.CandidateEmail,
		Answers:        breakdown,
		TotalScore:     totalScore,
		MaxScore:       maxScore,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка сохранения отклика")
	}

	saved, err := i.store.GetByID(id)
	if err != nil || saved == nil {
		return nil, "", errors.Wrap(err, "ошибка получения сохранённого отклика")
	}
	view := convertView(*saved)
	return &view, "", nil
}

func (i impl) GetByID(id string) (*applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, nil
	}
	view := convertView(*rec)
	return &view, nil
}

func (i impl) ListByJob(jobID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationListItem, int64, error) {
	rowCount, err := i.store.ListByJobCount(jobID)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.ListByJob(jobID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка откликов")
	}
	result := make([]applicationapimodels.ApplicationListItem, 0, len(list))
	for _, rec := range list {
		result = append(result, convertListItem(rec))
	}
	return result, rowCount, nil
}

func (i impl) ExportByJob(jobID string) (*bytes.Buffer, error) {
	jobRec, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if jobRec == nil {
		return nil, errors.New("вакансия не найдена")
	}
	list, err := i.store.ListAllByJob(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	return xlsexport.Instance.ExportApplicationList(*jobRec, list)
}

func (i impl) Scorecard(id string) (*bytes.Buffer, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, errors.New("отклик не найден")
	}
	jobRec, err := i.jobStore.GetByID(rec.JobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	title := ""
	if jobRec != nil {
		title = jobRec.Title
	}
	return pdfexport.GenerateScorecard(title, *rec)
}

func convertView(rec dbmodels.Application) applicationapimodels.ApplicationView {
	return applicationapimodels.ApplicationView{
		ID:              rec.ID,
		JobID:           rec.JobID,
		CandidateName:   rec.CandidateName,
		CandidateEmail:  rec.CandidateEmail,
		TotalScore:      rec.TotalScore,
		MaxScore:        rec.MaxScore,
		ScorePercentage: scoring.Percentage(rec.TotalScore, rec.MaxScore),
		Answers:         rec.Answers,
		CreatedAt:       rec.CreatedAt,
	}
}

func convertListItem(rec dbmodels.Application) applicationapimodels.ApplicationListItem {
	return applicationapimodels.ApplicationListItem{
		ID:              rec.ID,
		JobID:           rec.JobID,
		CandidateName:   rec.CandidateName,
		CandidateEmail:  rec.CandidateEmail,
		TotalScore:      rec.TotalScore,
		MaxScore:        rec.MaxScore,
		ScorePercentage: scoring.Percentage(rec.TotalScore, rec.MaxScore),
		CreatedAt:       rec.CreatedAt,
	}
}
