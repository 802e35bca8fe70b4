package tracking

import (
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/crebase/listing-finder/pkg/common"
	"github.com/crebase/listing-finder/pkg/messaging"
	"github.com/crebase/listing-finder/pkg/types"
)

const topicPrefix = "listing"

// searchDebounce matches the UI's keystroke coalescing window, so a burst
// of rapid re-searches from one session lands as a single event.
const searchDebounce = 300 * time.Millisecond

// RabbitTracking publishes search events over AMQP. Search events are
// debounced per instance; save and delete events go out immediately.
type RabbitTracking struct {
	connection *amqp.Connection
	debounce   *common.Debouncer
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		debounce: common.NewDebouncer(searchDebounce),
	}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	for _, topic := range []messaging.EventTopic{
		messaging.SearchAppliedTopic,
		messaging.FilterSavedTopic,
		messaging.FilterDeletedTopic,
	} {
		if err := messaging.DefineTopic(ch, topicPrefix, topic); err != nil {
			return err
		}
	}
	return nil
}

func (t *RabbitTracking) Close() error {
	t.debounce.Stop()
	return t.connection.Close()
}

type SearchEvent struct {
	SessionId string             `json:"session_id"`
	Filters   types.FilterValues `json:"filters"`
	Sort      string             `json:"sort,omitempty"`
}

type FilterEvent struct {
	SessionId string `json:"session_id"`
	FilterId  string `json:"filter_id"`
	Name      string `json:"name,omitempty"`
}

func (t *RabbitTracking) TrackSearch(sessionId string, filters types.FilterValues, sortKey string) error {
	event := SearchEvent{SessionId: sessionId, Filters: filters, Sort: sortKey}
	t.debounce.Trigger(func() {
		if err := messaging.SendEvent(t.connection, topicPrefix, messaging.SearchAppliedTopic, event); err != nil {
			log.Printf("failed to publish search event: %v", err)
		}
	})
	return nil
}

func (t *RabbitTracking) TrackFilterSaved(sessionId, id, name string) error {
	return messaging.SendEvent(t.connection, topicPrefix, messaging.FilterSavedTopic, FilterEvent{
		SessionId: sessionId,
		FilterId:  id,
		Name:      name,
	})
}

func (t *RabbitTracking) TrackFilterDeleted(sessionId, id string) error {
	return messaging.SendEvent(t.connection, topicPrefix, messaging.FilterDeletedTopic, FilterEvent{
		SessionId: sessionId,
		FilterId:  id,
	})
}
