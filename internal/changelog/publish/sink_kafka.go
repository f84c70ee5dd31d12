package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink mirrors the change feed onto Kafka, one topic per channel, for
// downstream consumers (analytics, compliance export) that outlive the
// ephemeral pub/sub delivery.
type KafkaSink struct {
	client *kgo.Client
}

// NewKafkaSink builds a sink over an existing franz-go client. The client
// should be configured with AllowAutoTopicCreation or pre-created topics.
func NewKafkaSink(client *kgo.Client) *KafkaSink {
	return &KafkaSink{client: client}
}

func (s *KafkaSink) Publish(ctx context.Context, channel string, events []string, payload []byte) error {
	msg, err := json.Marshal(envelope{Events: events, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	rec := &kgo.Record{
		Topic: topicName(channel),
		Key:   []byte(channel),
		Value: msg,
	}
	if err := s.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("kafka produce %s: %w", rec.Topic, err)
	}
	return nil
}

// topicName collapses id-scoped channels onto their base topic; the channel
// stays in the record key so consumers can still partition per aggregate.
func topicName(channel string) string {
	if idx := strings.LastIndexByte(channel, '-'); idx > 0 {
		suffix := channel[idx+1:]
		if suffix != "" && isID(suffix) {
			return channel[:idx]
		}
	}
	return channel
}

func isID(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') && r != '-' {
			return false
		}
	}
	return true
}

func (s *KafkaSink) Close() {
	s.client.Close()
}
