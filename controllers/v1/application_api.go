package apiv1

import (
	"fmt"
	"time"

	"job-intake-backend/controllers"
	"job-intake-backend/lib/application"
	filestorage "job-intake-backend/lib/file-storage"
	apimodels "job-intake-backend/models/api"
	applicationapimodels "job-intake-backend/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("job/:id/application", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("export", controller.export) // выгрузка откликов в Excel
	})
	app.Route("application/:id", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Get("scorecard", controller.scorecard) // оценочный лист в PDF
		router.Get("resume", controller.getResume)    // скачать резюме кандидата
	})
}

// @Summary Список откликов
// @Tags Отклик
// @Description Список откликов по вакансии
// @Param   id          		path    string  true         "ID вакансии"
// @Param	body body	 applicationapimodels.ApplicationFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationListItem}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/application/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ApplicationFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := application.Instance.ListByJob(jobID, payload)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("job_id", jobID)
		return c.SendError(ctx, logger, err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузить в Excel
// @Tags Отклик
// @Description Выгрузка откликов по вакансии в Excel
// @Param   id          		path    string  true         "ID вакансии"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/application/export [get]
func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := application.Instance.ExportByJob(jobID)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("job_id", jobID)
		return c.SendError(ctx, logger, err, "Ошибка выгрузки откликов в Excel")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Получение
// @Tags Отклик
// @Description Получение отклика с разбивкой оценки по вопросам
// @Param   id          		path    string  true         "Идентификатор ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.GetByID(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("application_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения отклика")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("отклик не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Оценочный лист
// @Tags Отклик
// @Description Оценочный лист отклика в PDF
// @Param   id          		path    string  true         "Идентификатор ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/scorecard [get]
func (c *applicationApiController) scorecard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := application.Instance.Scorecard(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("application_id", id)
		return c.SendError(ctx, logger, err, "Ошибка формирования оценочного листа")
	}
	fileName := fmt.Sprintf("scorecard-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Скачать резюме кандидата
// @Tags Отклик
// @Description Скачать резюме кандидата
// @Param   id          		path    string  true         "ID отклика"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/resume [get]
func (c *applicationApiController) getResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := filestorage.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("application_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения резюме")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
