package jobstore

import (
	"fmt"
	"job-intake-backend/models"
	jobapimodels "job-intake-backend/models/api/job"
	dbmodels "job-intake-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	Delete(id string) error
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
	ListCount(filter jobapimodels.JobFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	tx := i.db.
		Select(clause.Associations).
		Delete(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ListCount(filter jobapimodels.JobFilter) (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.Job{}).
		Count(&rowCount).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества вакансий")
		return 0, errors.New("ошибка получения общего количества вакансий")
	}
	return rowCount, nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	offset, limit := filter.GetOffset()
	err = i.db.
		Model(&dbmodels.Job{}).
		Preload(clause.Associations).
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

func orderExpr(sortBy models.JobSortField, order models.SortOrder) string {
	// значения проверены в JobFilter.Validate, конкатенация безопасна
	return fmt.Sprintf("%s %s", sortBy, order)
}
