package messaging

import (
	"momovender/src/internal/model"
	kafka "momovender/src/pkg/kafka/confluent"
	"momovender/src/pkg/log"
)

type TransactionProducer struct {
	WalletProducer       Producer[*model.TransactionEvent]
	NotificationProducer Producer[*model.NotificationEvent]
}

func NewTransactionProducer(producer kafka.Producer, log log.Log) *TransactionProducer {
	return &TransactionProducer{
		WalletProducer: Producer[*model.TransactionEvent]{
			Producer: producer,
			Topic:    "wallet-transaction",
			Log:      log,
		},
		NotificationProducer: Producer[*model.NotificationEvent]{
			Producer: producer,
			Topic:    "agent-notification",
			Log:      log,
		},
	}
}

func (p *TransactionProducer) SendTransactionLogged(event *model.TransactionEvent) error {
	return p.WalletProducer.Send(event)
}

func (p *TransactionProducer) SendNotification(event *model.NotificationEvent) error {
	return p.NotificationProducer.Send(event)
}
