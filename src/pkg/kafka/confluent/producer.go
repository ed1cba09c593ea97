package kafka

import (
	"fmt"

	"momovender/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type kafkaProducer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	producer, err := k.NewProducer(config)
	if err != nil {
		return nil, err
	}

	p := &kafkaProducer{
		producer: producer,
		log:      logger,
	}

	// drain delivery reports so the internal queue never fills up
	go func() {
		for e := range producer.Events() {
			if m, ok := e.(*k.Message); ok && m.TopicPartition.Error != nil {
				p.log.Error("kafka-producer",
					fmt.Sprintf("delivery failed: %v", m.TopicPartition.Error),
					"deliveryReport", "")
			}
		}
	}()

	return p, nil
}

func (p *kafkaProducer) Publish(message *k.Message) error {
	return p.producer.Produce(message, nil)
}
