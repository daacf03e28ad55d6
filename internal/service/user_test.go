package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawmart/pawmart-server/internal/transport"
)

func TestUserService_Upsert_MissingEmail(t *testing.T) {
	t.Parallel()

	svc := &UserService{}

	res, err := svc.Upsert(context.Background(), transport.UpsertUserRequest{Name: "Ada"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}
