package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"momovender/src/internal/entity"
	"momovender/src/internal/model"
	"momovender/src/internal/model/converter"
	"momovender/src/internal/repository"
	httpError "momovender/src/pkg/http-error"
	"momovender/src/pkg/log"
	"momovender/src/pkg/token"
	"momovender/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

// authStore is the slice of the agent repository the auth flow needs.
type authStore interface {
	FindByID(ctx context.Context, id int64) (*entity.Agent, error)
	FindByEmailOrUsername(ctx context.Context, identity string) (*entity.Agent, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	Create(ctx context.Context, agent *entity.Agent) (int64, error)
	EnsureAccount(ctx context.Context, agentID int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	InsertLoginHistory(ctx context.Context, userID int64, deviceInfo, ipAddress string) error
	FindProfile(ctx context.Context, id int64) (*repository.ProfileRow, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, phone string) error
	UpdatePassword(ctx context.Context, id int64, hashed string) error
}

type AuthUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Agents   authStore
	Config   *viper.Viper
	Redis    redis.UniversalClient
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	agentRepository *repository.AgentRepository,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *AuthUseCase {
	return &AuthUseCase{
		Log:      logger,
		Validate: validate,
		Agents:   agentRepository,
		Config:   cfg,
		Redis:    redisClient,
	}
}

// buildUsername derives the default login name: lowercase last name plus
// the last four digits of the phone number.
func buildUsername(lastName, phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	suffix := digits
	if len(digits) > 4 {
		suffix = digits[len(digits)-4:]
	}
	return strings.ToLower(strings.ReplaceAll(lastName, " ", "")) + suffix
}

func (c *AuthUseCase) Register(ctx context.Context, request *model.RegisterRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("Register-validation", err.Error(), "request", request.Email)
		return result
	}

	exists, err := c.Agents.ExistsByEmailOrPhone(ctx, request.Email, request.Phone)
	if err != nil {
		c.Log.Error("Register-ExistsByEmailOrPhone", err.Error(), "request", request.Email)
		result.Error = httpError.NewInternalServerError()
		return result
	}
	if exists {
		errObj := httpError.NewConflict()
		errObj.Message = "an account with this email or phone already exists"
		result.Error = errObj
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Log.Error("Register-hash", err.Error(), "request", request.Email)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	agent := &entity.Agent{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Username:  buildUsername(request.LastName, request.Phone),
		Email:     request.Email,
		Phone:     request.Phone,
		Role:      request.Role,
		Password:  string(hashed),
		BranchID:  request.BranchID,
		IsActive:  true,
	}

	id, err := c.Agents.Create(ctx, agent)
	if err != nil {
		c.Log.Error("Register-Create", err.Error(), "request", request.Email)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if err := c.Agents.EnsureAccount(ctx, id); err != nil {
		c.Log.Error("Register-EnsureAccount", err.Error(), "agentID", utils.ConvertString(id))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("Register", "agent registered", "agentID", utils.ConvertString(id))
	result.Data = &model.RegisterResponse{Username: agent.Username}
	return result
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	agent, err := c.Agents.FindByEmailOrUsername(ctx, request.EmailOrUsername)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid credentials"
		result.Error = errObj
		c.Log.Error("Login-FindByEmailOrUsername", "no such agent", "identity", request.EmailOrUsername)
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agent.Password), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid credentials"
		result.Error = errObj
		return result
	}

	sessionID := uuid.NewString()
	tokenString, err := token.Generate(c.Config.GetString("jwt.secret"), token.Metadata{
		UserID:   agent.ID,
		FullName: agent.FullName(),
		Role:     agent.Role,
		BranchID: agent.BranchID,
	}, sessionID)
	if err != nil {
		c.Log.Error("Login-token", err.Error(), "agentID", utils.ConvertString(agent.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	key := fmt.Sprintf("SESSION:%d", agent.ID)
	if err := c.Redis.Set(ctx, key, sessionID, sessionTTL).Err(); err != nil {
		c.Log.Error("Login-session", err.Error(), "agentID", utils.ConvertString(agent.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	// is_active doubles as an online flag for the dashboards.
	if err := c.Agents.SetActive(ctx, agent.ID, true); err != nil {
		c.Log.Error("Login-SetActive", err.Error(), "agentID", utils.ConvertString(agent.ID))
	}

	// Best effort: a failed history write never blocks the login.
	if err := c.Agents.InsertLoginHistory(ctx, agent.ID, request.DeviceInfo, request.IPAddress); err != nil {
		c.Log.Error("Login-history", err.Error(), "agentID", utils.ConvertString(agent.ID))
	}

	c.Log.Info("Login", "agent logged in", "agentID", utils.ConvertString(agent.ID))
	result.Data = converter.AgentToLoginResponse(agent, tokenString)
	return result
}

func (c *AuthUseCase) Logout(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	key := fmt.Sprintf("SESSION:%d", principal.ID)
	if err := c.Redis.Del(ctx, key).Err(); err != nil {
		c.Log.Error("Logout", err.Error(), "agentID", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if err := c.Agents.SetActive(ctx, principal.ID, false); err != nil {
		c.Log.Error("Logout-SetActive", err.Error(), "agentID", utils.ConvertString(principal.ID))
	}

	result.Data = map[string]interface{}{"logged_out": true}
	return result
}

func (c *AuthUseCase) Profile(ctx context.Context, principal model.Principal) utils.Result {
	var result utils.Result

	row, err := c.Agents.FindProfile(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "user not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("Profile", err.Error(), "agentID", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = &model.ProfileResponse{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Username:   row.Username,
		Email:      row.Email,
		Phone:      row.Phone,
		Role:       row.Role,
		BranchName: row.BranchName,
		CreatedAt:  row.CreatedAt,
	}
	return result
}

func (c *AuthUseCase) UpdateProfile(ctx context.Context, principal model.Principal, request *model.UpdateProfileRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	err := c.Agents.UpdateProfile(ctx, principal.ID, request.FirstName, request.LastName, request.Phone)
	if err != nil {
		c.Log.Error("UpdateProfile", err.Error(), "agentID", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = map[string]interface{}{"updated": true}
	return result
}

func (c *AuthUseCase) ChangePassword(ctx context.Context, principal model.Principal, request *model.ChangePasswordRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	agent, err := c.Agents.FindByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = "user not found"
			result.Error = errObj
			return result
		}
		c.Log.Error("ChangePassword-FindByID", err.Error(), "agentID", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agent.Password), []byte(request.CurrentPassword)); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "current password incorrect"
		result.Error = errObj
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.Log.Error("ChangePassword-hash", err.Error(), "agentID", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if err := c.Agents.UpdatePassword(ctx, principal.ID, string(hashed)); err != nil {
		c.Log.Error("ChangePassword-update", err.Error(), "agentID", utils.ConvertString(principal.ID))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("ChangePassword", "password changed", "agentID", utils.ConvertString(principal.ID))
	result.Data = map[string]interface{}{"changed": true}
	return result
}
