// Package queue_publisher provides functions to publish directory events to
// RabbitMQ. Publishing is best-effort: errors are logged and returned so
// callers can ignore failures without interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/booking-directory/internal/queue"
)

// Publisher publishes listing events to the broker at URL. A nil Publisher
// is valid and silently drops events, which keeps tests and broker-less
// deployments working.
type Publisher struct {
	URL string // AMQP connection string
}

// New constructs a Publisher for the given AMQP URL. It returns nil when
// the URL is empty so callers can skip publishing entirely.
func New(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{URL: url}
}

// VenueListed publishes a VenueListedEvent to the "venue.listed" queue.
func (p *Publisher) VenueListed(ctx context.Context, ev q.VenueListedEvent) error {
	return p.publish(ctx, "venue.listed", ev)
}

// ArtistListed publishes an ArtistListedEvent to the "artist.listed" queue.
func (p *Publisher) ArtistListed(ctx context.Context, ev q.ArtistListedEvent) error {
	return p.publish(ctx, "artist.listed", ev)
}

// ShowListed publishes a ShowListedEvent to the "show.listed" queue.
func (p *Publisher) ShowListed(ctx context.Context, ev q.ShowListedEvent) error {
	return p.publish(ctx, "show.listed", ev)
}

// publish declares the queue (idempotent, durable) and sends one persistent
// JSON message to it. The function never panics; any error is logged and
// returned so the caller can choose to ignore it.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
