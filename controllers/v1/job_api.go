package apiv1

import (
	"job-intake-backend/controllers"
	"job-intake-backend/lib/job"
	apimodels "job-intake-backend/models/api"
	jobapimodels "job-intake-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии с вопросами
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := job.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список
// @Tags Вакансия
// @Description Список вакансий
// @Param	body body	 jobapimodels.JobFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/list [post]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := job.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение
// @Tags Вакансия
// @Description Получение вакансии с вопросами и оценками
// @Param   id          		path    string  true         "Идентификатор ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := job.Instance.GetByID(id)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("job_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения вакансии")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("вакансия не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удаление
// @Tags Вакансия
// @Description Удаление вакансии вместе с вопросами
// @Param   id          		path    string  true         "Идентификатор ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = job.Instance.Delete(id); err != nil {
		logger := c.GetLogger(ctx).WithField("job_id", id)
		return c.SendError(ctx, logger, err, "Ошибка удаления вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
