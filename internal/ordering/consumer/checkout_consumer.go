package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	basketdomain "github.com/nqbjnh/go-shop/internal/basket/domain"
	"github.com/nqbjnh/go-shop/internal/ordering/domain"
	"github.com/nqbjnh/go-shop/internal/ordering/repository"
)

const topic = "basket-checkout"

type Consumer struct {
	repo   repository.OrderRepository
	reader *kafka.Reader
}

func NewConsumer(repo repository.OrderRepository, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  "ordering-service",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{repo: repo, reader: reader}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Printf("error reading message: %v", err)
			continue
		}
		c.handleMessage(ctx, m.Value)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("error closing kafka reader: %v", err)
	}
}

// handleMessage turns one checkout event into an order row. The bus is
// at-least-once, so a redelivered event hits the unique event_id
// constraint and is skipped.
func (c *Consumer) handleMessage(ctx context.Context, payload []byte) {
	var event basketdomain.BasketCheckoutEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Printf("error parsing checkout event: %v", err)
		return
	}

	if event.EventID == uuid.Nil {
		log.Printf("checkout event without event_id for user %q, dropping", event.UserName)
		return
	}

	order := &domain.Order{
		ID:           uuid.New(),
		EventID:      event.EventID,
		UserName:     event.UserName,
		TotalPrice:   event.TotalPrice,
		FirstName:    event.FirstName,
		LastName:     event.LastName,
		EmailAddress: event.EmailAddress,
		AddressLine:  event.AddressLine,
		Country:      event.Country,
		Status:       domain.OrderStatusPlaced,
	}

	if err := c.repo.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateEvent) {
			log.Printf("order for event %s already exists, skipping", event.EventID)
			return
		}
		log.Printf("failed to create order for event %s: %v", event.EventID, err)
		return
	}

	log.Printf("order %s created for checkout event %s, total %.2f", order.ID, event.EventID, order.TotalPrice)
}
