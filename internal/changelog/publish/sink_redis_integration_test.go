//go:build integration

package publish_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle/internal/changelog/publish"
	"chronicle/pkg/testutil/containers"
)

func TestRedisSinkDeliversEnvelope(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	sub := rc.Client.Subscribe(ctx, "incident-changelog-channel")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err, "subscription must be confirmed before publishing")

	sink := publish.NewRedisSink(rc.Client)
	err = sink.Publish(ctx, "incident-changelog-channel",
		[]string{"new-changelog", "incident-update"},
		[]byte(`{"subjectId":"inc-1"}`),
	)
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var env struct {
			Events  []string        `json:"events"`
			Payload json.RawMessage `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &env))
		assert.Equal(t, []string{"new-changelog", "incident-update"}, env.Events)
		assert.JSONEq(t, `{"subjectId":"inc-1"}`, string(env.Payload))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}
