// Package analytics delivers fire-and-forget usage events. Sinks must never
// block or fail the caller.
package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resty.dev/v3"
)

// Event is one analytics data point.
type Event struct {
	Name       string            `json:"name"`
	OccurredAt time.Time         `json:"occurred_at"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Sink receives events. Implementations swallow their own errors.
type Sink interface {
	Track(event Event)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Track(Event) {}

// HTTPSink posts events to a collection endpoint from a background goroutine.
type HTTPSink struct {
	client   *resty.Client
	endpoint string
	wg       sync.WaitGroup
}

// NewHTTPSink creates a sink posting to the given endpoint.
func NewHTTPSink(endpoint string) *HTTPSink {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	return &HTTPSink{client: client, endpoint: endpoint}
}

// Track sends the event without blocking the caller. Delivery failures are
// logged at debug level and otherwise ignored.
func (s *HTTPSink) Track(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := s.client.R().
			SetContext(ctx).
			SetBody(event).
			Post(s.endpoint)
		if err != nil {
			slog.Default().Debug("analytics event dropped",
				slog.String("event", event.Name),
				slog.Any("error", err))
			return
		}
		if res.IsError() {
			slog.Default().Debug("analytics endpoint rejected event",
				slog.String("event", event.Name),
				slog.Int("status", res.StatusCode()))
		}
	}()
}

// Close waits for in-flight events and releases the client.
func (s *HTTPSink) Close() error {
	s.wg.Wait()
	return s.client.Close()
}
