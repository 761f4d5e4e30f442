package controllers

import (
	apimodels "job-intake-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("некорректный идентификатор")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithField("path", ctx.Path())
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
