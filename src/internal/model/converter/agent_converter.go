package converter

import (
	"momovender/src/internal/entity"
	"momovender/src/internal/model"
)

func AgentToLoginResponse(agent *entity.Agent, tokenString string) *model.LoginResponse {
	return &model.LoginResponse{
		Token:     tokenString,
		ID:        agent.ID,
		FirstName: agent.FirstName,
		LastName:  agent.LastName,
		Username:  agent.Username,
		Role:      agent.Role,
		BranchID:  agent.BranchID,
	}
}
