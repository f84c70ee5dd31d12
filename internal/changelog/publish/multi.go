package publish

import (
	"context"
	"errors"
)

// MultiSink delivers to every sink; all sinks are attempted even when an
// earlier one fails, and the errors are joined.
type MultiSink []Sink

func (m MultiSink) Publish(ctx context.Context, channel string, events []string, payload []byte) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Publish(ctx, channel, events, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
