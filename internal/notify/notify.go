// Package notify fans lifecycle events out to a message broker after the
// transition that produced them has committed. Delivery is best effort:
// a broker outage never fails or rolls back a transition.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/mtlprog/dormreport/internal/domain"
)

const (
	defaultAttempts = 3
	defaultDelay    = 200 * time.Millisecond
	defaultMaxDelay = 2 * time.Second
	publishTimeout  = 5 * time.Second
)

// Message is the broker payload for one report event.
type Message struct {
	EventID  string    `json:"event_id"`
	ReportID string    `json:"report_id"`
	ActorID  string    `json:"actor_id"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	Note     string    `json:"note"`
	At       time.Time `json:"at"`
}

// NewMessage builds the payload for an event and the report state it produced.
func NewMessage(event *domain.ReportEvent, status domain.ReportStatus) Message {
	return Message{
		EventID:  event.ID,
		ReportID: event.ReportID,
		ActorID:  event.ActorID,
		Type:     string(event.Type),
		Status:   string(status),
		Note:     event.Note,
		At:       event.At,
	}
}

// RoutingKey is the topic the message is published under, e.g. "report.received".
func (m Message) RoutingKey() string {
	return "report." + strings.ToLower(m.Type)
}

func (m Message) encode() ([]byte, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}
	return body, nil
}

// Publisher delivers a single message to a broker.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Notifier publishes messages with retries and swallows final failures after logging them.
type Notifier struct {
	publisher Publisher
	attempts  uint
	delay     time.Duration
	maxDelay  time.Duration

	wg sync.WaitGroup
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAttempts sets how many times a publish is tried.
func WithAttempts(n uint) Option {
	return func(nt *Notifier) { nt.attempts = n }
}

// WithDelay sets the initial and maximum backoff between attempts.
func WithDelay(initial, max time.Duration) Option {
	return func(nt *Notifier) {
		nt.delay = initial
		nt.maxDelay = max
	}
}

// New creates a Notifier. A nil publisher disables notifications.
func New(publisher Publisher, opts ...Option) *Notifier {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	n := &Notifier{
		publisher: publisher,
		attempts:  defaultAttempts,
		delay:     defaultDelay,
		maxDelay:  defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Publish sends msg, retrying with exponential backoff. It returns the last error
// so callers and tests can observe failures.
func (n *Notifier) Publish(ctx context.Context, msg Message) error {
	return retry.Do(
		func() error {
			pctx, cancel := context.WithTimeout(ctx, publishTimeout)
			defer cancel()
			return n.publisher.Publish(pctx, msg)
		},
		retry.Context(ctx),
		retry.Attempts(n.attempts),
		retry.Delay(n.delay),
		retry.MaxDelay(n.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			slog.Warn("publish report event failed, retrying",
				"attempt", attempt+1,
				"event_id", msg.EventID,
				"error", err,
			)
		}),
	)
}

// Notify publishes msg and logs instead of returning an error.
func (n *Notifier) Notify(ctx context.Context, msg Message) {
	if err := n.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish report event",
			"event_id", msg.EventID,
			"report_id", msg.ReportID,
			"type", msg.Type,
			"error", err,
		)
		return
	}
	slog.Debug("report event published", "event_id", msg.EventID, "routing_key", msg.RoutingKey())
}

// Dispatch runs Notify in the background, detached from ctx cancellation.
func (n *Notifier) Dispatch(ctx context.Context, msg Message) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.Notify(context.WithoutCancel(ctx), msg)
	}()
}

// Close waits for in-flight dispatches and releases the underlying publisher.
func (n *Notifier) Close() error {
	n.wg.Wait()
	return n.publisher.Close()
}

// NopPublisher discards every message.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Message) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
