package initializers

import (
	"context"

	"job-intake-backend/config"
	"job-intake-backend/fiberlog"
	"job-intake-backend/lib/application"
	notifyworker "job-intake-backend/lib/application/notify-worker"
	xlsexport "job-intake-backend/lib/export/xls"
	filestorage "job-intake-backend/lib/file-storage"
	"job-intake-backend/lib/job"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	job.NewHandler()
	application.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача уведомления оператора о новых откликах
	notifyworker.StartWorker(ctx)
}
