package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/pawmart/pawmart-server/internal/transport"
)

func TestBuildUserUpsert_RolePreservedWhenOmitted(t *testing.T) {
	t.Parallel()

	// Profile refresh without a role must not touch an existing role:
	// an admin stays an admin across refreshes.
	update := buildUserUpsert(transport.UpsertUserRequest{
		Name:     "Ada",
		Email:    "a@x.com",
		PhotoURL: "http://img",
	})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.NotContains(t, set, "role")
	assert.Equal(t, "Ada", set["name"])
	assert.Equal(t, "a@x.com", set["email"])
	assert.Equal(t, "http://img", set["photoURL"])

	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "user", onInsert["role"])
}

func TestBuildUserUpsert_ExplicitRoleOverrides(t *testing.T) {
	t.Parallel()

	update := buildUserUpsert(transport.UpsertUserRequest{
		Name:  "Ada",
		Email: "a@x.com",
		Role:  "admin",
	})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "admin", set["role"])
	assert.NotContains(t, update, "$setOnInsert")
}
