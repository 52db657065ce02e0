// Package broker publishes notifications about published videos to a
// durable AMQP queue, from which downstream processors (transcoders,
// thumbnailers) consume them.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/hbomb79/Marquee/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	log = logger.Get("Broker")

	ErrDisabled = errors.New("message broker is not configured")
)

type (
	Config struct {
		URL   string `yaml:"url" env:"AMQP_URL"`
		Queue string `yaml:"queue" env:"AMQP_QUEUE" env-default:"videos"`
	}

	// VideoMessage is published once a video has been published, and
	// describes where the source media can be downloaded from.
	VideoMessage struct {
		ID       string `json:"id"`
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}

	// Channel is the subset of an AMQP channel used for publishing.
	Channel interface {
		PublishWithContext(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error
		Close() error
	}

	// Dialer opens a channel to the broker, ensuring the queue provided exists.
	Dialer func(url string, queue string) (Channel, func() error, error)

	Publisher struct {
		config Config
		dial   Dialer

		mu      sync.Mutex
		channel Channel
		close   func() error
	}
)

// String hides any password embedded in the broker URL.
func (c Config) String() string {
	brokerURL := "[redacted]"
	if parsed, err := url.Parse(c.URL); err == nil {
		brokerURL = parsed.Redacted()
	}

	return fmt.Sprintf("{URL:%s Queue:%s}", brokerURL, c.Queue)
}

func (c Config) GoString() string { return "broker.Config" + c.String() }

// New creates a publisher. Connection to the broker is made lazily upon first
// publish, and re-established if a publish fails. If no URL is configured then
// the publisher is disabled.
func New(config Config) *Publisher {
	return NewWithDialer(config, dialAMQP)
}

func NewWithDialer(config Config, dial Dialer) *Publisher {
	return &Publisher{config: config, dial: dial}
}

func (publisher *Publisher) Enabled() bool { return publisher.config.URL != "" }

// PublishVideo publishes the message as a persistent JSON message to the
// configured queue.
func (publisher *Publisher) PublishVideo(ctx context.Context, msg VideoMessage) error {
	if !publisher.Enabled() {
		return ErrDisabled
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal video message: %w", err)
	}

	publisher.mu.Lock()
	defer publisher.mu.Unlock()

	if publisher.channel == nil {
		channel, closer, err := publisher.dial(publisher.config.URL, publisher.config.Queue)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		publisher.channel, publisher.close = channel, closer
	}

	if err := publisher.channel.PublishWithContext(ctx, "", publisher.config.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		publisher.closeLocked()
		return fmt.Errorf("failed to publish video message: %w", err)
	}

	log.Emit(logger.SUCCESS, "Published video %s to queue %s\n", msg.ID, publisher.config.Queue)
	return nil
}

func (publisher *Publisher) Close() error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()

	return publisher.closeLocked()
}

func (publisher *Publisher) closeLocked() error {
	if publisher.channel == nil {
		return nil
	}

	err := errors.Join(publisher.channel.Close(), publisher.close())
	publisher.channel, publisher.close = nil, nil
	return err
}

func dialAMQP(url string, queue string) (Channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return ch, conn.Close, nil
}
