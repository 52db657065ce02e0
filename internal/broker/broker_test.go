package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hbomb79/Marquee/internal/broker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	failNext  error
	closed    bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _ string, key string, _ bool, _ bool, msg amqp.Publishing) error {
	if err := c.failNext; err != nil {
		c.failNext = nil
		return err
	}

	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func Test_DisabledPublisher(t *testing.T) {
	publisher := broker.New(broker.Config{Queue: "videos"})
	assert.False(t, publisher.Enabled())
	assert.ErrorIs(t, publisher.PublishVideo(context.Background(), broker.VideoMessage{ID: "1"}), broker.ErrDisabled)
}

func Test_PublishVideo(t *testing.T) {
	channel := &fakeChannel{}
	dials := 0
	publisher := broker.NewWithDialer(broker.Config{URL: "amqp://localhost", Queue: "videos"}, func(url string, queue string) (broker.Channel, func() error, error) {
		dials++
		assert.Equal(t, "videos", queue)
		return channel, func() error { return nil }, nil
	})

	msg := broker.VideoMessage{ID: "abc", URL: "http://localhost:9000/videos/abc/original.mp4", Filename: "original.mp4"}
	require.NoError(t, publisher.PublishVideo(context.Background(), msg))
	require.NoError(t, publisher.PublishVideo(context.Background(), msg))
	assert.Equal(t, 1, dials, "connection must be reused")

	require.Len(t, channel.published, 2)
	assert.Equal(t, []string{"videos", "videos"}, channel.keys)
	assert.Equal(t, amqp.Persistent, channel.published[0].DeliveryMode)
	assert.Equal(t, "application/json", channel.published[0].ContentType)

	var decoded broker.VideoMessage
	require.NoError(t, json.Unmarshal(channel.published[0].Body, &decoded))
	assert.Equal(t, msg, decoded)
}

func Test_PublishFailureReconnects(t *testing.T) {
	channel := &fakeChannel{failNext: errors.New("channel closed")}
	dials := 0
	publisher := broker.NewWithDialer(broker.Config{URL: "amqp://localhost", Queue: "videos"}, func(string, string) (broker.Channel, func() error, error) {
		dials++
		return channel, func() error { return nil }, nil
	})

	assert.Error(t, publisher.PublishVideo(context.Background(), broker.VideoMessage{ID: "1"}))
	assert.True(t, channel.closed)

	require.NoError(t, publisher.PublishVideo(context.Background(), broker.VideoMessage{ID: "1"}))
	assert.Equal(t, 2, dials)
}

func Test_DialFailure(t *testing.T) {
	publisher := broker.NewWithDialer(broker.Config{URL: "amqp://localhost", Queue: "videos"}, func(string, string) (broker.Channel, func() error, error) {
		return nil, nil, errors.New("connection refused")
	})

	assert.Error(t, publisher.PublishVideo(context.Background(), broker.VideoMessage{ID: "1"}))
	assert.NoError(t, publisher.Close())
}
