package applicationstore

import (
	"fmt"
	"job-intake-backend/models"
	applicationapimodels "job-intake-backend/models/api/application"
	dbmodels "job-intake-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	ListByJob(jobID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error)
	ListByJobCount(jobID string) (count int64, err error)
	ListAllByJob(jobID string) (list []dbmodels.Application, err error)
	ListUnnotified() (list []dbmodels.Application, err error)
	SetNotified(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByJobCount(jobID string) (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Count(&rowCount).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества откликов")
		return 0, errors.New("ошибка получения общего количества откликов")
	}
	return rowCount, nil
}

func (i impl) ListByJob(jobID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	offset, limit := filter.GetOffset()
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Order(orderExpr(filter.SortBy, filter.Order)).
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAllByJob(jobID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Order("total_score desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListUnnotified() (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("is_notified = false").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetNotified(id string) error {
	return i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("is_notified", true).
		Error
}

func orderExpr(sortBy models.ApplicationSortField, order models.SortOrder) string {
	column := "total_score"
	if sortBy == models.ApplicationSortFieldCreatedAt {
		column = "created_at"
	}
	// значения проверены в ApplicationFilter.Validate
	return fmt.Sprintf("%s %s", column, order)
}
