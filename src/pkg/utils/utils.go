package utils

import (
	"encoding/json"
	"strconv"

	httpError "momovender/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the uniform usecase return value.
type Result struct {
	Data  interface{}
	Error error
}

type responseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Response renders a success envelope. Clients key off the success flag,
// not the HTTP status, when rendering banners.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError renders a failure envelope, mapping CommonError codes and
// hiding everything else behind a generic 500.
func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(responseBody{
			Success: false,
			Message: commonErr.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(responseBody{
		Success: false,
		Message: "internal server error",
	})
}

// ConvertString marshals anything into a loggable string.
func ConvertString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, _ := strconv.Atoi(val)
		return n
	default:
		return 0
	}
}
