package transport

import (
	"github.com/pawmart/pawmart-server/internal/models"
)

type ListingQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Recent   string `query:"recent"`
	SortBy   string `query:"sortBy"`
	Order    string `query:"order"`
}

type UpsertUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

// Server-assigned fields are never accepted from clients.
var reservedKeys = map[string]struct{}{
	"_id":       {},
	"id":        {},
	"createdAt": {},
	"orderedAt": {},
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

// ListingFromBody splits a flat JSON body into the typed listing core and its
// free-form Extra attributes.
func ListingFromBody(body map[string]any) models.Listing {
	l := models.Listing{
		Name:     asString(body["name"]),
		Category: asString(body["category"]),
		Price:    asFloat(body["price"]),
		Image:    asString(body["image"]),
		Email:    asString(body["email"]),
	}

	for k, v := range body {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		switch k {
		case "name", "category", "price", "image", "email":
			continue
		}
		if l.Extra == nil {
			l.Extra = map[string]any{}
		}
		l.Extra[k] = v
	}
	return l
}

func OrderFromBody(body map[string]any) models.Order {
	o := models.Order{
		Email: asString(body["email"]),
	}

	for k, v := range body {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		if k == "email" {
			continue
		}
		if o.Extra == nil {
			o.Extra = map[string]any{}
		}
		o.Extra[k] = v
	}
	return o
}

// UpdateFromBody extracts the claimed owner email and the partial update set
// from a PUT/DELETE body. Reserved fields never make it into the update.
func UpdateFromBody(body map[string]any) (ownerEmail string, fields map[string]any) {
	ownerEmail = asString(body["ownerEmail"])

	fields = map[string]any{}
	for k, v := range body {
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		if k == "ownerEmail" {
			continue
		}
		fields[k] = v
	}
	return ownerEmail, fields
}
