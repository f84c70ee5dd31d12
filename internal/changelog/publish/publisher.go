// Package publish fans finished change-log records out to realtime
// subscribers through an opaque pub/sub sink. Delivery is fire-and-forget
// and at-most-once; subscribers that miss a message rely on the query API.
package publish

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"chronicle/internal/changelog"
)

var (
	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chronicle_publish_failures_total",
		Help: "Pub/sub deliveries that failed and were dropped",
	})
	broadcastChunks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chronicle_broadcast_chunks_total",
		Help: "Chunks published by the batched broadcast path",
	})
)

// Broadcast defaults satisfy the pub/sub provider's per-second message-rate
// ceiling; the chunk delay is the only intentional throttle in the pipeline.
const (
	DefaultBatchSize = 50
	DefaultDelay     = time.Second
)

// Sink delivers one message to one channel. Implementations must tolerate
// unbounded concurrent callers.
type Sink interface {
	Publish(ctx context.Context, channel string, events []string, payload []byte) error
}

// ChannelPayload pairs a channel with its own payload for the individual
// broadcast variant.
type ChannelPayload struct {
	Channel string
	Payload []byte
}

// Publisher routes and delivers records. Its sleep function is injectable
// so throttle behavior is testable without wall-clock waits.
type Publisher struct {
	sink   Sink
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration)

	batchSize int
	delay     time.Duration
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithSleep replaces the inter-chunk delay implementation.
func WithSleep(fn func(ctx context.Context, d time.Duration)) Option {
	return func(p *Publisher) { p.sleep = fn }
}

// WithBatchSize overrides the default broadcast chunk size.
func WithBatchSize(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithDelay overrides the default inter-chunk delay.
func WithDelay(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.delay = d
		}
	}
}

func New(sink Sink, logger *slog.Logger, opts ...Option) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{
		sink:      sink,
		logger:    logger,
		sleep:     sleepCtx,
		batchSize: DefaultBatchSize,
		delay:     DefaultDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// PublishRecord delivers one record to the channel routed for its kind.
// Unrouted kinds return nil without touching the sink.
func (p *Publisher) PublishRecord(ctx context.Context, kind changelog.Kind, subjectID string, events []string, payload []byte) error {
	channel, ok := ChannelFor(kind, subjectID)
	if !ok {
		return nil
	}
	return p.Publish(ctx, channel, events, payload)
}

// Publish delivers one payload to one explicit channel.
func (p *Publisher) Publish(ctx context.Context, channel string, events []string, payload []byte) error {
	ctx, span := otel.Tracer("chronicle/publish").Start(ctx, "publish")
	defer span.End()
	span.SetAttributes(attribute.String("channel", channel))

	if err := p.sink.Publish(ctx, channel, events, payload); err != nil {
		publishFailures.Inc()
		return err
	}
	return nil
}

// BroadcastBatches delivers one shared payload to many channels in chunks of
// batchSize, sleeping delay between chunks but not after the last. Failures
// are logged per channel; remaining chunks still attempt delivery.
func (p *Publisher) BroadcastBatches(ctx context.Context, channels []string, events []string, payload []byte, batchSize int, delay time.Duration) {
	pairs := make([]ChannelPayload, len(channels))
	for i, ch := range channels {
		pairs[i] = ChannelPayload{Channel: ch, Payload: payload}
	}
	p.BroadcastIndividual(ctx, pairs, events, batchSize, delay)
}

// BroadcastIndividual is the per-channel-payload variant of
// BroadcastBatches: same chunking and throttling, but each channel gets its
// own payload.
func (p *Publisher) BroadcastIndividual(ctx context.Context, pairs []ChannelPayload, events []string, batchSize int, delay time.Duration) {
	if batchSize <= 0 {
		batchSize = p.batchSize
	}
	if delay <= 0 {
		delay = p.delay
	}

	for start := 0; start < len(pairs); start += batchSize {
		end := start + batchSize
		if end > len(pairs) {
			end = len(pairs)
		}
		for _, pair := range pairs[start:end] {
			if err := p.Publish(ctx, pair.Channel, events, pair.Payload); err != nil {
				p.logger.ErrorContext(ctx, "broadcast delivery failed",
					"channel", pair.Channel,
					"error", err,
				)
			}
		}
		broadcastChunks.Inc()
		if end < len(pairs) {
			p.sleep(ctx, delay)
		}
	}
}
