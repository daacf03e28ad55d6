package repo

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pawmart/pawmart-server/internal/transport"
)

// BuildListingQuery maps index query params onto a Mongo filter and sort.
// All present filters are ANDed; missing params never produce an error.
func BuildListingQuery(q transport.ListingQuery, now time.Time) (bson.M, bson.D) {
	filter := bson.M{}

	if category := strings.TrimSpace(q.Category); category != "" {
		filter["category"] = category
	}

	if q.Recent == "true" {
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		filter["createdAt"] = bson.M{"$gte": startOfMonth}
	}

	if q.Search != "" {
		// Escaped so the search term only ever matches as a literal substring.
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	direction := -1
	if q.Order == "asc" {
		direction = 1
	}

	return filter, bson.D{{Key: sortBy, Value: direction}}
}
