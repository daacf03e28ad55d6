package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawmart/pawmart-server/internal/models"
	"github.com/pawmart/pawmart-server/internal/service"
	"github.com/pawmart/pawmart-server/internal/transport"
	"github.com/pawmart/pawmart-server/pkg/logging"
)

type ListingHTTP struct {
	Svc *service.ListingService
	Dev bool
}

func (h *ListingHTTP) GetListings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.get_listings")

	var q transport.ListingQuery
	if err := c.Bind(&q); err != nil {
		l.Warn("get_listings_failed", "status", 400, "reason", "invalid query", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	items, err := h.Svc.List(ctx, q)
	if err != nil {
		return serviceError(l, "get_listings_failed", err, h.Dev)
	}

	l.Info("get_listings_success", "count", len(items))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

func (h *ListingHTTP) GetRecentListings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.get_recent")

	items, err := h.Svc.Recent(ctx)
	if err != nil {
		return serviceError(l, "get_recent_failed", err, h.Dev)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ListingHTTP) GetListing(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.get_listing")

	listing, err := h.Svc.GetByID(ctx, c.Param("id"))
	if err != nil {
		return serviceError(l, "get_listing_failed", err, h.Dev)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Get list successfully",
		"list":    listing,
	})
}

func (h *ListingHTTP) GetMyListings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.get_my_listings")

	email := c.Param("email")
	if email == "" {
		email = c.QueryParam("email")
	}

	items, err := h.Svc.ByOwner(ctx, email)
	if err != nil {
		return serviceError(l, "get_my_listings_failed", err, h.Dev)
	}

	l.Info("get_my_listings_success", "count", len(items))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"lists":   items,
	})
}

func (h *ListingHTTP) CreateListing(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.create_listing")

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		l.Warn("create_listing_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	created, err := h.Svc.Create(ctx, transport.ListingFromBody(body))
	if err != nil {
		return serviceError(l, "create_listing_failed", err, h.Dev)
	}

	l.Info("create_listing_success", "id", created.ID.Hex())
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Listing created successfully!",
		"item":    created,
	})
}

func (h *ListingHTTP) CreateListingsBatch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.create_batch")

	var bodies []map[string]any
	if err := c.Bind(&bodies); err != nil {
		l.Warn("create_batch_failed", "status", 400, "reason", "expected an array of listings", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "expected an array of listings")
	}

	items := make([]models.Listing, len(bodies))
	for i, body := range bodies {
		items[i] = transport.ListingFromBody(body)
	}

	count, ids, err := h.Svc.CreateBatch(ctx, items)
	if err != nil {
		return serviceError(l, "create_batch_failed", err, h.Dev)
	}

	l.Info("create_batch_success", "inserted", count)
	return c.JSON(http.StatusCreated, echo.Map{
		"insertedCount": count,
		"insertedIds":   ids,
	})
}

func (h *ListingHTTP) UpdateListing(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.update_listing")

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		l.Warn("update_listing_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ownerEmail, fields := transport.UpdateFromBody(body)

	modified, err := h.Svc.Update(ctx, c.Param("id"), fields, ownerEmail)
	if err != nil {
		return serviceError(l, "update_listing_failed", err, h.Dev)
	}

	l.Info("update_listing_success", "modified", modified)
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Listing updated successfully",
		"modifiedCount": modified,
	})
}

func (h *ListingHTTP) DeleteListing(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "listing.delete_listing")

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		l.Warn("delete_listing_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ownerEmail, _ := transport.UpdateFromBody(body)

	deleted, err := h.Svc.Delete(ctx, c.Param("id"), ownerEmail)
	if err != nil {
		return serviceError(l, "delete_listing_failed", err, h.Dev)
	}

	l.Info("delete_listing_success", "deleted", deleted)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Listing deleted successfully",
		"deletedCount": deleted,
	})
}
