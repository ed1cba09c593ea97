package http

import (
	"momovender/src/internal/delivery/http/middleware"
	"momovender/src/internal/model"
	"momovender/src/internal/usecase"
	"momovender/src/pkg/log"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Log     log.Log
	UseCase *usecase.AuthUseCase
}

func NewAuthController(useCase *usecase.AuthUseCase, logger log.Log) *AuthController {
	return &AuthController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Registered", fiber.StatusCreated, ctx)
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	if request.IPAddress == "" {
		request.IPAddress = ctx.IP()
	}
	if request.DeviceInfo == "" {
		request.DeviceInfo = ctx.Get(fiber.HeaderUserAgent)
	}

	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.Logout(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Logout", fiber.StatusOK, ctx)
}

func (c *AuthController) Profile(ctx *fiber.Ctx) error {
	principal := middleware.GetPrincipal(ctx)

	result := c.UseCase.Profile(ctx.Context(), principal)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Profile", fiber.StatusOK, ctx)
}

func (c *AuthController) UpdateProfile(ctx *fiber.Ctx) error {
	request := new(model.UpdateProfileRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.UpdateProfile", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.UpdateProfile(ctx.Context(), middleware.GetPrincipal(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Profile updated", fiber.StatusOK, ctx)
}

func (c *AuthController) ChangePassword(ctx *fiber.Ctx) error {
	request := new(model.ChangePasswordRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.ChangePassword", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ChangePassword(ctx.Context(), middleware.GetPrincipal(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Password changed", fiber.StatusOK, ctx)
}
