package job

import (
	"job-intake-backend/db"
	jobstore "job-intake-backend/lib/job/store"
	jobapimodels "job-intake-backend/models/api/job"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(payload jobapimodels.JobData) (id string, err error)
	GetByID(id string) (*jobapimodels.JobView, error)
	GetPublicByID(id string) (*jobapimodels.PublicJobView, error)
	List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(payload jobapimodels.JobData) (string, error) {
	id, err := i.store.Create(payload.ToRecord())
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения вакансии")
	}
	return id, nil
}

func (i impl) GetByID(id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return nil, nil
	}
	view := jobapimodels.JobConvert(*rec)
	return &view, nil
}

func (i impl) GetPublicByID(id string) (*jobapimodels.PublicJobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return nil, nil
	}
	view := jobapimodels.JobConvertPublic(*rec)
	return &view, nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}
