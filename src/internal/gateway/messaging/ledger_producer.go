package messaging

import (
	"momovender/src/internal/model"
	kafka "momovender/src/pkg/kafka/confluent"
	"momovender/src/pkg/log"
)

// LedgerProducer fans out float and payroll mutations plus the periodic
// dashboard rollup.
type LedgerProducer struct {
	FloatProducer     Producer[*model.FloatUpdateEvent]
	PayrollProducer   Producer[*model.PayrollUpdateEvent]
	DashboardProducer Producer[*model.DashboardUpdateEvent]
}

func NewLedgerProducer(producer kafka.Producer, log log.Log) *LedgerProducer {
	return &LedgerProducer{
		FloatProducer: Producer[*model.FloatUpdateEvent]{
			Producer: producer,
			Topic:    "float-update",
			Log:      log,
		},
		PayrollProducer: Producer[*model.PayrollUpdateEvent]{
			Producer: producer,
			Topic:    "payroll-update",
			Log:      log,
		},
		DashboardProducer: Producer[*model.DashboardUpdateEvent]{
			Producer: producer,
			Topic:    "dashboard-update",
			Log:      log,
		},
	}
}

func (p *LedgerProducer) SendFloatUpdate(event *model.FloatUpdateEvent) error {
	return p.FloatProducer.Send(event)
}

func (p *LedgerProducer) SendPayrollUpdate(event *model.PayrollUpdateEvent) error {
	return p.PayrollProducer.Send(event)
}

func (p *LedgerProducer) SendDashboardUpdate(event *model.DashboardUpdateEvent) error {
	return p.DashboardProducer.Send(event)
}
