package publicapi

import (
	"io"

	"job-intake-backend/controllers"
	"job-intake-backend/lib/application"
	filestorage "job-intake-backend/lib/file-storage"
	"job-intake-backend/lib/job"
	apimodels "job-intake-backend/models/api"
	applicationapimodels "job-intake-backend/models/api/application"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type publicJobApiController struct {
	controllers.BaseAPIController
}

func InitPublicJobApiRouters(app *fiber.App) {
	controller := publicJobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getJob)
			idRoute.Post("apply", controller.apply)
		})
	})
	app.Route("application", func(router fiber.Router) {
		router.Put(":id/resume", controller.uploadResume)
	})
}

// @Summary Получение вакансии
// @Tags Отклик кандидата
// @Description Получение вакансии с вопросами без параметров оценки
// @Param   id          		path    string  true         "Идентификатор ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.PublicJobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/{id} [get]
func (c *publicJobApiController) getJob(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := job.Instance.GetPublicByID(id)
	if err != nil {
		logger := log.WithField("job_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения вакансии")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("вакансия не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отправка отклика
// @Tags Отклик кандидата
// @Description Отправка отклика с ответами на вопросы вакансии
// @Param   id          		path    string  true         "ID вакансии"
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/{id}/apply [post]
func (c *publicJobApiController) apply(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ApplicationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, hMsg, err := application.Instance.Create(jobID, payload)
	if err != nil {
		logger := log.WithField("job_id", jobID)
		return c.SendError(ctx, logger, err, "Ошибка сохранения отклика")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Загрузить резюме
// @Tags Отклик кандидата
// @Description Загрузить файл резюме к отклику
// @Param   id          		path    string  true         "ID отклика"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/{id}/resume [put]
func (c *publicJobApiController) uploadResume(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	rec, err := application.Instance.GetByID(applicationID)
	if err != nil {
		logger := log.WithField("application_id", applicationID)
		return c.SendError(ctx, logger, err, "Ошибка получения отклика")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("отклик не найден"))
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = filestorage.Instance.UploadResume(ctx.UserContext(), applicationID, file.Filename, fileBody)
	if err != nil {
		logger := log.WithField("application_id", applicationID)
		return c.SendError(ctx, logger, err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
