package converter

import (
	"testing"

	"momovender/src/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPendingClampedAtZero(t *testing.T) {
	e := &entity.AgentEarnings{
		ID:     1,
		Earned: decimal.NewFromInt(50),
	}

	agent := PayrollAgentFromAggregates(e, decimal.NewFromInt(80))

	assert.Equal(t, 50.0, agent.Earned)
	assert.Equal(t, 80.0, agent.Paid)
	assert.Equal(t, 0.0, agent.Pending)
}

func TestRoundingHappensAtDisplay(t *testing.T) {
	// 1.50% of 333.33 = 4.99995, displayed as 5.00
	e := &entity.AgentEarnings{
		ID:     1,
		Earned: decimal.RequireFromString("4.99995"),
	}

	agent := PayrollAgentFromAggregates(e, decimal.Zero)

	assert.Equal(t, 5.0, agent.Earned)
	assert.Equal(t, 5.0, agent.Pending)
}

func TestMissingBranchAndUsernameDefaults(t *testing.T) {
	e := &entity.AgentEarnings{ID: 1}

	agent := PayrollAgentFromAggregates(e, decimal.Zero)

	assert.Equal(t, "No Branch", agent.BranchName)
	assert.Equal(t, "unknown", agent.Username)
}
