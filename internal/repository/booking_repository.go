package repository

import (
    "context"
    "database/sql"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// BookingRepo provides read access to the bookings table.  Booking
// creation and cancellation belong to the reservation workflow; the
// discovery service only reads bookings to compute availability.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo {
    return &BookingRepo{db: db}
}

// ListBlocking returns every booking whose status makes its listing
// unavailable (pending or confirmed).  Legacy rows can have NULL dates
// or a lost listing back-link; those scan to zero values and the
// availability calculator skips them instead of failing the query.
func (r *BookingRepo) ListBlocking(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT id, listing_id, guest_id, check_in, check_out, status, created_at
               FROM bookings
               WHERE status IN (?, ?)`
    rows, err := r.db.QueryContext(ctx, q, model.BookingStatusPending, model.BookingStatusConfirmed)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    bookings := make([]model.Booking, 0)
    for rows.Next() {
        var (
            b         model.Booking
            listingID sql.NullInt64
            checkIn   sql.NullTime
            checkOut  sql.NullTime
        )
        if err := rows.Scan(&b.ID, &listingID, &b.GuestID, &checkIn, &checkOut, &b.Status, &b.CreatedAt); err != nil {
            return nil, err
        }
        if listingID.Valid {
            b.ListingID = uint64(listingID.Int64)
        }
        if checkIn.Valid {
            b.CheckIn = checkIn.Time
        }
        if checkOut.Valid {
            b.CheckOut = checkOut.Time
        }
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return bookings, nil
}
