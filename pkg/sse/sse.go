package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Topic names carried over the live channel.
const (
	TopicActivities = "activities"
	TopicDailies    = "dailies"
	TopicWishes     = "wishes"
)

// Event is the envelope delivered to live subscribers.
type Event struct {
	Type      string      `json:"type"`
	Action    string      `json:"action,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type topicEvent struct {
	topic string
	event Event
}

// Subscription is one live consumer of one or more topics.
type Subscription struct {
	manager *Manager
	topics  map[string]struct{}
	ch      chan Event
	closed  bool
}

// C returns the channel events arrive on. The channel is closed when the
// subscription is removed from the manager.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Close detaches the subscription. Safe to call once per subscription.
func (s *Subscription) Close() {
	s.manager.unregister <- s
}

// Manager is the in-process broadcast hub. A single goroutine (Run) owns the
// subscriber registry, so publishes are delivered in submission order to each
// subscriber. A slow subscriber never blocks a publisher: events beyond its
// buffer are dropped.
type Manager struct {
	register    chan *Subscription
	unregister  chan *Subscription
	events      chan topicEvent
	subscribers map[*Subscription]struct{}
}

func NewManager() *Manager {
	return &Manager{
		register:    make(chan *Subscription),
		unregister:  make(chan *Subscription),
		events:      make(chan topicEvent, 256),
		subscribers: make(map[*Subscription]struct{}),
	}
}

// Run processes registrations and publishes. Call once, in its own goroutine.
func (m *Manager) Run() {
	for {
		select {
		case sub := <-m.register:
			m.subscribers[sub] = struct{}{}
		case sub := <-m.unregister:
			if _, ok := m.subscribers[sub]; ok {
				delete(m.subscribers, sub)
				close(sub.ch)
			}
		case te := <-m.events:
			for sub := range m.subscribers {
				if _, ok := sub.topics[te.topic]; !ok {
					continue
				}
				select {
				case sub.ch <- te.event:
				default:
					// Subscriber buffer full, drop rather than block.
				}
			}
		}
	}
}

// Subscribe attaches a new consumer for the given topics.
func (m *Manager) Subscribe(topics ...string) *Subscription {
	sub := &Subscription{
		manager: m,
		topics:  make(map[string]struct{}, len(topics)),
		ch:      make(chan Event, 16),
	}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}
	m.register <- sub
	return sub
}

// Publish delivers an event to every current subscriber of topic. It never
// blocks and never errors: with no subscribers (or a saturated hub) the event
// is silently dropped.
func (m *Manager) Publish(topic string, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case m.events <- topicEvent{topic: topic, event: event}:
	default:
		log.Printf("[SSE] Event queue full, dropping event on topic %s", topic)
	}
}

// BroadcastActivity publishes a newly created activity to all clients.
func (m *Manager) BroadcastActivity(activity interface{}) {
	m.Publish(TopicActivities, Event{Type: "ACTIVITY", Action: "CREATE", Payload: activity})
}

// BroadcastDailyUpdate publishes a daily post change (CREATE/UPDATE/DELETE).
func (m *Manager) BroadcastDailyUpdate(daily interface{}, action string) {
	m.Publish(TopicDailies, Event{Type: "DAILY", Action: action, Payload: daily})
}

// BroadcastWishUpdate publishes a wish change (CREATE/UPDATE/DELETE).
func (m *Manager) BroadcastWishUpdate(wish interface{}, action string) {
	m.Publish(TopicWishes, Event{Type: "WISH", Action: action, Payload: wish})
}

// ServeHTTP streams events for the given topics until the client disconnects.
func (m *Manager) ServeHTTP(c *gin.Context, topics []string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	sub := m.Subscribe(topics...)
	defer sub.Close()

	keepAlive := time.NewTicker(30 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-keepAlive.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			c.Writer.Flush()
		case event, ok := <-sub.C():
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("[SSE] Failed to marshal event: %v", err)
				continue
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			c.Writer.Flush()
		}
	}
}
