package http

import (
	"momovender/src/internal/delivery/http/middleware"
	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	Log     log.Log
	UseCase *usecase.NotificationUseCase
}

func NewNotificationController(useCase *usecase.NotificationUseCase, logger log.Log) *NotificationController {
	return &NotificationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *NotificationController) SendChat(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	request := new(model.SendChatRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("NotificationController.SendChat", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.SendChat(ctx.Context(), principal, request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Message sent", fiber.StatusCreated, ctx)
}

func (c *NotificationController) ChatHistory(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	peerID, err := ctx.ParamsInt("peerId")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ChatHistory(ctx.Context(), principal, int64(peerID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Chat history", fiber.StatusOK, ctx)
}

func (c *NotificationController) List(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.List(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Notifications", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	body := struct {
		IDs []int64 `json:"ids"`
	}{}
	if err := ctx.BodyParser(&body); err != nil {
		c.Log.Error("NotificationController.MarkRead", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.MarkRead(ctx.Context(), principal, body.IDs)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Notifications updated", fiber.StatusOK, ctx)
}

func (c *NotificationController) Online(ctx *fiber.Ctx) error {
	result := c.UseCase.Online(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Online agents", fiber.StatusOK, ctx)
}
