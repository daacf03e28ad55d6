package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawmart/pawmart-server/internal/models"
	"github.com/pawmart/pawmart-server/internal/transport"
)

// buildUserUpsert shapes the profile refresh. An existing role survives the
// refresh unless the request carries a new one; fresh profiles default to
// the "user" role.
func buildUserUpsert(req transport.UpsertUserRequest) bson.M {
	set := bson.M{
		"name":     req.Name,
		"email":    req.Email,
		"photoURL": req.PhotoURL,
	}
	update := bson.M{"$set": set}

	if req.Role != "" {
		set["role"] = req.Role
	} else {
		update["$setOnInsert"] = bson.M{"role": "user"}
	}
	return update
}

// UpsertUser atomically creates or refreshes the profile keyed by email.
func (r *MongoRepo) UpsertUser(ctx context.Context, req transport.UpsertUserRequest) (*mongo.UpdateResult, error) {
	opts := options.Update().SetUpsert(true)
	return r.users().UpdateOne(ctx, bson.M{"email": req.Email}, buildUserUpsert(req), opts)
}

func (r *MongoRepo) AllUsers(ctx context.Context) ([]models.User, error) {
	cur, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
