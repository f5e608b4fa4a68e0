package stream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	frames [][]byte
}

func (r *recorder) Send(data []byte) error {
	r.frames = append(r.frames, data)
	return nil
}

func TestSendFrameReachesEverySink(t *testing.T) {
	rec := &recorder{}
	broken := SinkFunc(func([]byte) error { return errors.New("offline") })
	s := NewStreamer(solid(t, "#ff0000"), 30, broken, rec)

	err := s.SendFrame(0)

	assert.ErrorContains(t, err, "offline")
	require.Len(t, rec.frames, 1)
	assert.Equal(t, []byte{1, 0, 255, 0, 0}, rec.frames[0])
}

func TestRunStopsWithContext(t *testing.T) {
	var sent atomic.Int32
	sink := SinkFunc(func([]byte) error {
		sent.Add(1)
		return nil
	})
	s := NewStreamer(solid(t, "#000000"), 200, sink)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- s.Run(ctx) }()
	require.Eventually(t, func() bool { return sent.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	mqtt.Client
	topic   string
	payload any
	err     error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topic = topic
	c.payload = payload
	return &fakeToken{err: c.err}
}

func TestMQTTSink(t *testing.T) {
	client := &fakeClient{}
	sink := NewMQTTSink(client, "home/xmastree/stream")

	require.NoError(t, sink.Send([]byte{1, 2}))
	assert.Equal(t, "home/xmastree/stream", client.topic)
	assert.Equal(t, []byte{1, 2}, client.payload)

	client.err = errors.New("not connected")
	assert.ErrorContains(t, sink.Send(nil), "not connected")
}
