package converter

import (
	"momovender/src/internal/entity"
	"momovender/src/internal/model"

	"github.com/shopspring/decimal"
)

// PayrollAgentFromAggregates joins the commission aggregate with the paid
// sum. Pending is clamped at zero so over-payment never shows as negative
// due. Rounding to 2 dp happens here, at the display boundary.
func PayrollAgentFromAggregates(e *entity.AgentEarnings, paid decimal.Decimal) model.PayrollAgent {
	pending := e.Earned.Sub(paid)
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	branchName := "No Branch"
	if e.BranchName != nil && *e.BranchName != "" {
		branchName = *e.BranchName
	}

	username := e.Username
	if username == "" {
		username = "unknown"
	}

	return model.PayrollAgent{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Username:   username,
		Role:       e.Role,
		BranchName: branchName,
		Earned:     e.Earned.Round(2).InexactFloat64(),
		Paid:       paid.Round(2).InexactFloat64(),
		Pending:    pending.Round(2).InexactFloat64(),
	}
}
