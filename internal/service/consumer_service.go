package service

import (
	"context"
	"encoding/json"
	"log"

	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/unitofwork"
	"petgroom-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the audit topic and persists each event as a
// system_logs row. It runs outside any request transaction, so a failed
// insert never affects the operation that emitted the event.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit event: %v", err)
		msg.Ack() // invalid payloads would never succeed on retry
		return
	}

	details := string(msg.Payload)
	module := "audit"
	entry := &entity.SystemLog{
		Level:   "INFO",
		Module:  &module,
		Message: evt.Type,
		Details: &details,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to persist audit event %s: %v", evt.Type, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
