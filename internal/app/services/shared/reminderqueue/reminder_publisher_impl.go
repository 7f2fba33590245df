package reminderqueue

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/app/models"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reminderPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewReminderPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.ReminderPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &reminderPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *reminderPublisher) PublishAftercareReminder(ctx context.Context, reminder *models.AftercareReminder) error {
	body, err := json.Marshal(reminder)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrQueuePublish(err, p.Queue)
	}

	p.Log.Info("reminderPublisher.PublishAftercareReminder published",
		zap.Int64(constvars.LoggingPatientIDKey, reminder.PatientID),
		zap.String(constvars.LoggingClinicRefKey, reminder.ClinicRef),
	)
	return nil
}
