// Package repository contains data access logic separated from HTTP handlers.
// This file defines the listing repository: the store adapter the
// discovery engine reads its snapshot from.  Listings are written by the
// publication workflow; this service only ever reads them.
package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/jhamir-web/voyago-web-sub000/internal/discovery"
    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// ErrListingNotFound is returned when a listing cannot be found in the DB.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepo encapsulates all database queries related to listings.
type ListingRepo struct {
    db *sql.DB
}

// NewListingRepo constructs a ListingRepo with the provided DB handle.
func NewListingRepo(db *sql.DB) *ListingRepo {
    return &ListingRepo{db: db}
}

const listingColumns = `id, host_id, title, location, description,
    category, place_type, activity_type, service_type,
    max_guests, status, created_at, updated_at`

// scanListing reads one listing row.  The legacy subtype columns and
// max_guests are nullable; NULL collapses to the zero value the model
// treats as "absent".  The derived Kind is tagged here, once, so no
// later pass re-infers it from the legacy fields.
func scanListing(row interface{ Scan(...any) error }) (model.Listing, error) {
    var (
        l          model.Listing
        location   sql.NullString
        descr      sql.NullString
        category   sql.NullString
        placeType  sql.NullString
        activity   sql.NullString
        service    sql.NullString
        maxGuests  sql.NullInt64
    )
    err := row.Scan(&l.ID, &l.HostID, &l.Title, &location, &descr,
        &category, &placeType, &activity, &service,
        &maxGuests, &l.Status, &l.CreatedAt, &l.UpdatedAt)
    if err != nil {
        return model.Listing{}, err
    }
    l.Location = location.String
    l.Description = descr.String
    l.Category = category.String
    l.PlaceType = placeType.String
    l.ActivityType = activity.String
    l.ServiceType = service.String
    if maxGuests.Valid && maxGuests.Int64 > 0 {
        l.MaxGuests = uint32(maxGuests.Int64)
    }
    return discovery.Tag(l), nil
}

// ListActive returns a snapshot of every active listing.  The status
// filter is applied server-side; no ordering is promised — the filter
// pipeline imposes its own.  The snapshot is finite and fully
// materialized before returning.
func (r *ListingRepo) ListActive(ctx context.Context) ([]model.Listing, error) {
    const q = `SELECT ` + listingColumns + ` FROM listings WHERE status = ?`
    rows, err := r.db.QueryContext(ctx, q, model.ListingStatusActive)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    listings := make([]model.Listing, 0)
    for rows.Next() {
        l, err := scanListing(rows)
        if err != nil {
            return nil, err
        }
        listings = append(listings, l)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return listings, nil
}

// GetByID fetches a single listing regardless of status.  It returns
// ErrListingNotFound when no row exists.
func (r *ListingRepo) GetByID(ctx context.Context, id uint64) (*model.Listing, error) {
    const q = `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`
    l, err := scanListing(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrListingNotFound
        }
        return nil, err
    }
    return &l, nil
}
