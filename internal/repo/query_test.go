package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pawmart/pawmart-server/internal/transport"
)

func TestBuildListingQuery_Defaults(t *testing.T) {
	t.Parallel()

	filter, sort := BuildListingQuery(transport.ListingQuery{}, time.Now())

	assert.Empty(t, filter)
	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestBuildListingQuery_Category(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		want     any
	}{
		{name: "exact match", category: "dog", want: "dog"},
		{name: "trimmed", category: "  cat  ", want: "cat"},
		{name: "whitespace only ignored", category: "   ", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, _ := BuildListingQuery(transport.ListingQuery{Category: tt.category}, time.Now())
			if tt.want == nil {
				assert.NotContains(t, filter, "category")
			} else {
				assert.Equal(t, tt.want, filter["category"])
			}
		})
	}
}

func TestBuildListingQuery_Recent(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 17, 15, 4, 5, 0, time.Local)

	filter, _ := BuildListingQuery(transport.ListingQuery{Recent: "true"}, now)

	rangeFilter, ok := filter["createdAt"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), rangeFilter["$gte"])
}

func TestBuildListingQuery_RecentNotTrue(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "false", "1", "TRUE"} {
		filter, _ := BuildListingQuery(transport.ListingQuery{Recent: v}, time.Now())
		assert.NotContains(t, filter, "createdAt")
	}
}

func TestBuildListingQuery_SearchEscapesMetacharacters(t *testing.T) {
	t.Parallel()

	filter, _ := BuildListingQuery(transport.ListingQuery{Search: "a.b*c(d)"}, time.Now())

	re, ok := filter["name"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `a\.b\*c\(d\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildListingQuery_SearchLiteralOnly(t *testing.T) {
	t.Parallel()

	// A pattern that would match everything if interpreted as a regex.
	filter, _ := BuildListingQuery(transport.ListingQuery{Search: ".*"}, time.Now())

	re, ok := filter["name"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, `\.\*`, re.Pattern)
}

func TestBuildListingQuery_Sort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sortBy  string
		order   string
		wantKey string
		wantDir int
	}{
		{name: "asc", sortBy: "price", order: "asc", wantKey: "price", wantDir: 1},
		{name: "desc", sortBy: "price", order: "desc", wantKey: "price", wantDir: -1},
		{name: "unknown order falls back to desc", sortBy: "name", order: "sideways", wantKey: "name", wantDir: -1},
		{name: "default field", sortBy: "", order: "asc", wantKey: "createdAt", wantDir: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, sort := BuildListingQuery(transport.ListingQuery{SortBy: tt.sortBy, Order: tt.order}, time.Now())
			require.Len(t, sort, 1)
			assert.Equal(t, tt.wantKey, sort[0].Key)
			assert.Equal(t, tt.wantDir, sort[0].Value)
		})
	}
}

func TestBuildListingQuery_FiltersCombine(t *testing.T) {
	t.Parallel()

	filter, _ := BuildListingQuery(transport.ListingQuery{
		Category: "dog",
		Search:   "leash",
		Recent:   "true",
	}, time.Now())

	assert.Len(t, filter, 3)
	assert.Equal(t, "dog", filter["category"])
	assert.Contains(t, filter, "name")
	assert.Contains(t, filter, "createdAt")
}
