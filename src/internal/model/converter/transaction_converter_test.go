package converter

import (
	"testing"
	"time"

	"momovender/src/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestActivityActionsHumanized(t *testing.T) {
	cases := map[string]string{
		"deposit":      "received deposit",
		"withdraw":     "sent withdrawal",
		"topup":        "bought airtime",
		"registration": "SIM registration",
		"contribution": "susu contribution",
		"other":        "transaction",
	}

	for txType, want := range cases {
		item := ActivityToItem(&entity.ActivityRow{
			Type:      txType,
			Amount:    decimal.NewFromInt(10),
			CreatedAt: time.Now(),
		})
		assert.Equal(t, want, item.Action, txType)
	}
}

func TestEmptyCustomerNameDefaults(t *testing.T) {
	item := ActivityToItem(&entity.ActivityRow{
		Type:      "deposit",
		Amount:    decimal.NewFromInt(10),
		CreatedAt: time.Now(),
	})

	assert.Equal(t, "Customer", item.Name)
}

func TestActivityAmountRounded(t *testing.T) {
	item := ActivityToItem(&entity.ActivityRow{
		Type:      "deposit",
		Amount:    decimal.RequireFromString("99.999"),
		CreatedAt: time.Now(),
	})

	assert.Equal(t, 100.0, item.Amount)
}
