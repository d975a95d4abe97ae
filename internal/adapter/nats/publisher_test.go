package natsadapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-hub/internal/core/domain"
	"creative-hub/internal/core/port"
)

var (
	_ port.Publisher = (*Publisher)(nil)
	_ port.Publisher = NoopPublisher{}
)

func startTestNATS(t *testing.T) string {
	t.Helper()
	srv, err := natsserver.NewServer(&natsserver.Options{Host: "127.0.0.1", Port: -1})
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestPublisher_Publish(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewPublisher(url)
	require.NoError(t, err)
	defer pub.Close()

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(port.TopicJobCompleted, ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	event := port.JobEvent{Job: domain.GenerationJob{ID: "job_1", Status: domain.JobCompleted}}
	require.NoError(t, pub.Publish(context.Background(), port.TopicJobCompleted, event))
	require.NoError(t, pub.conn.Flush())

	select {
	case msg := <-ch:
		var got port.JobEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "job_1", got.Job.ID)
		assert.Equal(t, domain.JobCompleted, got.Job.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}

func TestPublisher_MarshalError(t *testing.T) {
	url := startTestNATS(t)
	pub, err := NewPublisher(url)
	require.NoError(t, err)
	defer pub.Close()

	err = pub.Publish(context.Background(), "x", make(chan int))
	require.ErrorContains(t, err, "marshaling event")
}

func TestNewPublisher_Unreachable(t *testing.T) {
	_, err := NewPublisher("nats://127.0.0.1:1", nats.Timeout(200*time.Millisecond), nats.MaxReconnects(0))
	require.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	require.NoError(t, p.Publish(context.Background(), port.TopicCreativeCreated, nil))
	require.NoError(t, p.Close())
}
