package filestorage

import (
	"bytes"
	"context"
	"io"
	"job-intake-backend/config"
	"job-intake-backend/db"
	filesdbstorage "job-intake-backend/lib/file-storage/storage"
	dbmodels "job-intake-backend/models/db"
	s3client "job-intake-backend/s3"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadResume(ctx context.Context, applicationID, fileName string, file []byte) error
	GetResume(ctx context.Context, applicationID string) (file []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	store filesdbstorage.Provider
}

func (i impl) UploadResume(ctx context.Context, applicationID, fileName string, file []byte) error {
	objectKey := uuid.NewString() + filepath.Ext(fileName)
	reader := bytes.NewReader(file)
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		reader, int64(len(file)), minio.PutObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	rec := dbmodels.FileStorage{
		ApplicationID: applicationID,
		FileType:      dbmodels.ResumeFileType,
		Name:          fileName,
		ObjectKey:     objectKey,
	}
	_, err = i.store.SaveFile(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения данных о файле")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, applicationID string) ([]byte, string, error) {
	rec, err := i.store.GetByApplicationID(applicationID, dbmodels.ResumeFileType)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения данных о файле")
	}
	if rec == nil {
		return nil, "", errors.New("резюме не найдено")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return body, rec.Name, nil
}
