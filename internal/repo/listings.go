package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawmart/pawmart-server/internal/models"
)

// Fields exposed on the public listings index.
var listingProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "name", Value: 1},
	{Key: "category", Value: 1},
	{Key: "price", Value: 1},
	{Key: "image", Value: 1},
	{Key: "date", Value: 1},
	{Key: "createdAt", Value: 1},
}

func (r *MongoRepo) FindListings(ctx context.Context, filter bson.M, sort bson.D) ([]models.Listing, error) {
	opts := options.Find().SetSort(sort).SetProjection(listingProjection)

	cur, err := r.listings().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	items := make([]models.Listing, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) RecentListings(ctx context.Context, limit int64) ([]models.Listing, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.listings().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]models.Listing, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) GetListing(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	var listing models.Listing
	if err := r.listings().FindOne(ctx, bson.M{"_id": id}).Decode(&listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *MongoRepo) ListingsByOwner(ctx context.Context, email string) ([]models.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.listings().Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]models.Listing, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) InsertListing(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	res, err := r.listings().InsertOne(ctx, listing)
	if err != nil {
		return nil, err
	}

	var created models.Listing
	if err := r.listings().FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoRepo) InsertListings(ctx context.Context, items []models.Listing) (int64, []primitive.ObjectID, error) {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}

	res, err := r.listings().InsertMany(ctx, docs)
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

func (r *MongoRepo) UpdateListing(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	res, err := r.listings().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoRepo) DeleteListing(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.listings().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
