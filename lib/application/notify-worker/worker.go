package notifyworker

import (
	"context"
	"fmt"
	"job-intake-backend/config"
	"job-intake-backend/db"
	applicationstore "job-intake-backend/lib/application/store"
	jobstore "job-intake-backend/lib/job/store"
	"job-intake-backend/lib/scoring"
	"job-intake-backend/lib/smtp"
	"job-intake-backend/lib/utils/helpers"
	"time"

	log "github.com/sirupsen/logrus"
)

// уведомление оператора о новых откликах
func StartWorker(ctx context.Context) {
	i := &impl{
		store:    applicationstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
	go i.run(ctx)
}

const (
	handlePeriod = 5 * time.Minute
)

type impl struct {
	store    applicationstore.Provider
	jobStore jobstore.Provider
}

func (i impl) getLogger() *log.Entry {
	logger := log.
		WithField("worker_name", "ApplicationNotifyWorker")
	return logger
}

func (i impl) run(ctx context.Context) {
	period := 5 * time.Second
	logger := i.getLogger()
	for {
		select {
		// проверяем не завершён ли ещё контекст и выходим, если завершён
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(period):
			logger.Info("Задача запущена")
			i.handle(ctx)
			logger.Info("Задача выполнена")
		}
		period = handlePeriod
	}
}

func (i impl) handle(ctx context.Context) {
	logger := i.getLogger()
	notifyEmail := config.Conf.Notify.Email
	if notifyEmail == "" {
		return
	}
	list, err := i.store.ListUnnotified()
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка откликов для уведомления")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		recLogger := logger.WithField("application_id", rec.ID)
		jobTitle := rec.JobID
		jobRec, err := i.jobStore.GetByID(rec.JobID)
		if err == nil && jobRec != nil {
			jobTitle = jobRec.Title
		}
		message := fmt.Sprintf("Новый отклик на вакансию «%s».\nКандидат: %s (%s)\nРезультат: %.2f из %.2f (%.2f%%)",
			jobTitle, rec.CandidateName, rec.CandidateEmail,
			rec.TotalScore, rec.MaxScore, scoring.Percentage(rec.TotalScore, rec.MaxScore))
		err = smtp.Instance.SendEMail(rec.CandidateEmail, notifyEmail, message, "Новый отклик")
		if err != nil {
			recLogger.WithError(err).Error("ошибка отправки уведомления о новом отклике")
			continue
		}
		if err = i.store.SetNotified(rec.ID); err != nil {
			recLogger.WithError(err).Error("ошибка установки признака уведомления")
		}
	}
}
