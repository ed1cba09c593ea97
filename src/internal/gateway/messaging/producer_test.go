package messaging

import (
	"testing"

	"momovender/src/internal/model"
	"momovender/src/pkg/log"

	"github.com/stretchr/testify/assert"
)

// The app must run without a broker: all publishes become no-ops.
func TestSendWithDisabledBrokerIsNoOp(t *testing.T) {
	ledger := NewLedgerProducer(nil, log.Log{})

	assert.NotPanics(t, func() {
		assert.NoError(t, ledger.SendFloatUpdate(&model.FloatUpdateEvent{EventID: "evt-1"}))
		assert.NoError(t, ledger.SendPayrollUpdate(&model.PayrollUpdateEvent{EventID: "evt-2"}))
		assert.NoError(t, ledger.SendDashboardUpdate(&model.DashboardUpdateEvent{EventID: "evt-3"}))
	})

	transactions := NewTransactionProducer(nil, log.Log{})

	assert.NotPanics(t, func() {
		assert.NoError(t, transactions.SendTransactionLogged(&model.TransactionEvent{EventID: "evt-4"}))
		assert.NoError(t, transactions.SendNotification(&model.NotificationEvent{EventID: "evt-5"}))
	})
}
