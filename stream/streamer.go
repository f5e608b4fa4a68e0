package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// A Sink receives every marshalled frame.
type Sink interface {
	Send(data []byte) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(data []byte) error

func (f SinkFunc) Send(data []byte) error { return f(data) }

// MQTTSink publishes frames to an ledrx device over MQTT.
type MQTTSink struct {
	client mqtt.Client
	topic  string
}

// NewMQTTSink creates a sink publishing to topic.
func NewMQTTSink(client mqtt.Client, topic string) *MQTTSink {
	return &MQTTSink{client: client, topic: topic}
}

// Send publishes data and waits for the client to hand it off.
func (s *MQTTSink) Send(data []byte) error {
	token := s.client.Publish(s.topic, 0, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", s.topic, err)
	}
	return nil
}

// Streamer that streams RGB data frames to its sinks.
type Streamer struct {
	animation Animation
	sinks     []Sink
	interval  time.Duration
}

// NewStreamer creates an instance of a Streamer sending frameRate frames a
// second.
func NewStreamer(animation Animation, frameRate float64, sinks ...Sink) *Streamer {
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}
	return &Streamer{
		animation: animation,
		sinks:     sinks,
		interval:  time.Duration(float64(time.Second) / frameRate),
	}
}

// SendFrame renders the frame for runtimeMs and sends it to every sink. A
// failing sink does not stop the others.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Send(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	start := time.Now()
	log.Info().Dur("interval", s.interval).Int("sinks", len(s.sinks)).Msg("streaming")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			if err := s.SendFrame(time.Since(start).Milliseconds()); err != nil {
				log.Warn().Err(err).Msg("frame send failed")
			}
		}
	}
}
