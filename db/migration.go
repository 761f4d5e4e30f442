package db

import (
	dbmodels "job-intake-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Question{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Question")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
