package middleware

import (
	"fmt"
	"strings"

	"momovender/src/internal/model"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/token"
	"momovender/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const principalKey = "principal"

// NewAuth verifies the bearer token and checks the session is still the
// live one in Redis, so logout and re-login invalidate older tokens.
func NewAuth(cfg *viper.Viper, redisClient redis.UniversalClient) fiber.Handler {
	secret := cfg.GetString("jwt.secret")

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claim, err := token.Verify(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		key := fmt.Sprintf("SESSION:%d", claim.Metadata.UserID)
		sessionID, err := redisClient.Get(ctx.Context(), key).Result()
		if err != nil || sessionID != claim.SessionID {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "session expired, sign in again"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(principalKey, model.Principal{
			ID:        claim.Metadata.UserID,
			FullName:  claim.Metadata.FullName,
			Role:      claim.Metadata.Role,
			BranchID:  claim.Metadata.BranchID,
			SessionID: claim.SessionID,
		})
		return ctx.Next()
	}
}

// GetPrincipal returns the authenticated caller placed by NewAuth.
func GetPrincipal(ctx *fiber.Ctx) model.Principal {
	principal, _ := ctx.Locals(principalKey).(model.Principal)
	return principal
}

// AdminOnly gates a route to the admin alias set.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetPrincipal(ctx).IsAdmin() {
			errObj := httpError.NewForbidden()
			errObj.Message = "admin access required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

// ManagerOnly admits managers and the admin tier.
func ManagerOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetPrincipal(ctx).IsManager() {
			errObj := httpError.NewForbidden()
			errObj.Message = "manager access required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

// TransactingOnly admits every role that may log service transactions.
func TransactingOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetPrincipal(ctx).CanTransact() {
			errObj := httpError.NewForbidden()
			errObj.Message = "not permitted to log transactions"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}
