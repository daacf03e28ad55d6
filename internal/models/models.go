package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Listing struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"   json:"id,omitempty"`
	Name      string             `bson:"name"            json:"name"`
	Category  string             `bson:"category"        json:"category"`
	Price     float64            `bson:"price"           json:"price"`
	Image     string             `bson:"image"           json:"image"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"       json:"createdAt"`
	Extra     map[string]any     `bson:",inline"         json:"extra,omitempty"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email"         json:"email"`
	OrderedAt time.Time          `bson:"orderedAt"     json:"orderedAt"`
	Extra     map[string]any     `bson:",inline"       json:"extra,omitempty"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string             `bson:"email"         json:"email"`
	Name     string             `bson:"name"          json:"name"`
	PhotoURL string             `bson:"photoURL"      json:"photoURL"`
	Role     string             `bson:"role"          json:"role"`
}
