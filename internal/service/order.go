package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pawmart/pawmart-server/internal/events"
	"github.com/pawmart/pawmart-server/internal/models"
	"github.com/pawmart/pawmart-server/internal/repo"
)

type OrderService struct {
	Repo   *repo.MongoRepo
	Events *events.Producer
}

func (s *OrderService) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	order.OrderedAt = time.Now().UTC()

	created, err := s.Repo.InsertOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicOrders, created.Email, map[string]any{
		"type":    "order_created",
		"orderID": created.ID.Hex(),
	})
	return created, nil
}

func (s *OrderService) CreateBatch(ctx context.Context, items []models.Order) (int64, []primitive.ObjectID, error) {
	if len(items) == 0 {
		return 0, []primitive.ObjectID{}, nil
	}

	for i := range items {
		items[i].OrderedAt = time.Now().UTC()
	}
	return s.Repo.InsertOrders(ctx, items)
}

func (s *OrderService) ByOwner(ctx context.Context, email string) ([]models.Order, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	return s.Repo.OrdersByOwner(ctx, email)
}
