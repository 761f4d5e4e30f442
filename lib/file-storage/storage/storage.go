package filesdbstorage

import (
	dbmodels "job-intake-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByApplicationID(applicationID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	existedRec, err := i.GetByApplicationID(rec.ApplicationID, rec.FileType)
	if err != nil {
		return "", err
	}
	if existedRec != nil {
		rec.ID = existedRec.ID
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByApplicationID(applicationID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("application_id = ? AND file_type = ?", applicationID, fileType).
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
