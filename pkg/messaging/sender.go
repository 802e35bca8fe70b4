package messaging

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventTopic names one outbound event stream.
type EventTopic string

const (
	SearchAppliedTopic EventTopic = "search_applied"
	FilterSavedTopic   EventTopic = "filter_saved"
	FilterDeletedTopic EventTopic = "filter_deleted"
)

func getName(prefix string, topic EventTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

// DefineTopic declares the durable exchange and queue for a topic.
func DefineTopic(ch *amqp.Channel, prefix string, topic EventTopic) error {
	name := getName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(
		name,  // name of the queue
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,   // arguments
	); err != nil {
		return err
	}
	return nil
}

// SendEvent publishes a JSON encoded event on a topic, using a fresh
// channel per publish.
func SendEvent[V any](c *amqp.Connection, prefix string, topic EventTopic, data V) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := getName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        bytes,
		},
	)
}
