package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawmart/pawmart-server/internal/models"
	"github.com/pawmart/pawmart-server/internal/repo"
	"github.com/pawmart/pawmart-server/internal/transport"
)

type UserService struct {
	Repo *repo.MongoRepo
}

func (s *UserService) Upsert(ctx context.Context, req transport.UpsertUserRequest) (*mongo.UpdateResult, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	return s.Repo.UpsertUser(ctx, req)
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.Repo.AllUsers(ctx)
}
