package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawmart/pawmart-server/internal/models"
)

func (r *MongoRepo) InsertOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	res, err := r.orders().InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return &order, nil
}

func (r *MongoRepo) InsertOrders(ctx context.Context, items []models.Order) (int64, []primitive.ObjectID, error) {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}

	res, err := r.orders().InsertMany(ctx, docs)
	if err != nil {
		return 0, nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return int64(len(res.InsertedIDs)), ids, nil
}

func (r *MongoRepo) OrdersByOwner(ctx context.Context, email string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderedAt", Value: -1}})

	cur, err := r.orders().Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
