package repo

import (
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepo struct {
	DB *mongo.Database
}

func (r *MongoRepo) listings() *mongo.Collection { return r.DB.Collection("listings") }
func (r *MongoRepo) orders() *mongo.Collection   { return r.DB.Collection("orders") }
func (r *MongoRepo) users() *mongo.Collection    { return r.DB.Collection("users") }
