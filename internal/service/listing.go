package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawmart/pawmart-server/internal/events"
	"github.com/pawmart/pawmart-server/internal/models"
	"github.com/pawmart/pawmart-server/internal/repo"
	"github.com/pawmart/pawmart-server/internal/transport"
)

const recentLimit = 6

// ListingStore is the slice of the repository the listing service needs.
// *repo.MongoRepo is the production implementation.
type ListingStore interface {
	FindListings(ctx context.Context, filter bson.M, sort bson.D) ([]models.Listing, error)
	RecentListings(ctx context.Context, limit int64) ([]models.Listing, error)
	GetListing(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	ListingsByOwner(ctx context.Context, email string) ([]models.Listing, error)
	InsertListing(ctx context.Context, listing models.Listing) (*models.Listing, error)
	InsertListings(ctx context.Context, items []models.Listing) (int64, []primitive.ObjectID, error)
	UpdateListing(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error)
	DeleteListing(ctx context.Context, id primitive.ObjectID) (int64, error)
}

var _ ListingStore = (*repo.MongoRepo)(nil)

type ListingService struct {
	Repo   ListingStore
	Events *events.Producer
}

func (s *ListingService) List(ctx context.Context, q transport.ListingQuery) ([]models.Listing, error) {
	filter, sort := repo.BuildListingQuery(q, time.Now())
	return s.Repo.FindListings(ctx, filter, sort)
}

func (s *ListingService) Recent(ctx context.Context) ([]models.Listing, error) {
	return s.Repo.RecentListings(ctx, recentLimit)
}

func (s *ListingService) GetByID(ctx context.Context, idParam string) (*models.Listing, error) {
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid listing ID format", ErrValidation)
	}

	listing, err := s.Repo.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) ByOwner(ctx context.Context, email string) ([]models.Listing, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	return s.Repo.ListingsByOwner(ctx, email)
}

func (s *ListingService) Create(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	if listing.Name == "" || listing.Category == "" || listing.Image == "" || listing.Email == "" || listing.Price == 0 {
		return nil, fmt.Errorf("%w: all item fields are required", ErrValidation)
	}

	listing.CreatedAt = time.Now().UTC()

	created, err := s.Repo.InsertListing(ctx, listing)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, events.TopicListings, created.Email, map[string]any{
		"type":      "listing_created",
		"listingID": created.ID.Hex(),
		"name":      created.Name,
	})
	return created, nil
}

func (s *ListingService) CreateBatch(ctx context.Context, items []models.Listing) (int64, []primitive.ObjectID, error) {
	if len(items) == 0 {
		return 0, []primitive.ObjectID{}, nil
	}

	for i := range items {
		items[i].CreatedAt = time.Now().UTC()
	}
	return s.Repo.InsertListings(ctx, items)
}

func (s *ListingService) Update(ctx context.Context, idParam string, fields map[string]any, ownerEmail string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid listing ID format", ErrValidation)
	}

	listing, err := s.Repo.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return 0, err
	}

	if listing.Email != ownerEmail {
		return 0, fmt.Errorf("%w: you do not own this listing", ErrForbidden)
	}

	// An empty $set is rejected by the server; nothing to change anyway.
	if len(fields) == 0 {
		return 0, nil
	}

	modified, err := s.Repo.UpdateListing(ctx, id, fields)
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Events, events.TopicListings, listing.Email, map[string]any{
		"type":      "listing_updated",
		"listingID": id.Hex(),
	})
	return modified, nil
}

func (s *ListingService) Delete(ctx context.Context, idParam, ownerEmail string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid listing ID format", ErrValidation)
	}

	listing, err := s.Repo.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return 0, err
	}

	if listing.Email != ownerEmail {
		return 0, fmt.Errorf("%w: you do not own this listing", ErrForbidden)
	}

	deleted, err := s.Repo.DeleteListing(ctx, id)
	if err != nil {
		return 0, err
	}

	publish(ctx, s.Events, events.TopicListings, listing.Email, map[string]any{
		"type":      "listing_deleted",
		"listingID": id.Hex(),
	})
	return deleted, nil
}
