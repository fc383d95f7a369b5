package model

import "time"

// Booking statuses.  Only pending and confirmed bookings make a listing
// unavailable; cancelled and completed bookings never block dates.
const (
    BookingStatusPending   = "pending"
    BookingStatusConfirmed = "confirmed"
    BookingStatusCancelled = "cancelled"
    BookingStatusCompleted = "completed"
)

// Booking records a reservation against exactly one listing.  The
// listing reference is weak: bookings are written by the reservation
// workflow and only ever read here, and a booking is never deleted when
// its listing goes inactive.
//
// Fields:
//  ID        – primary key identifier.
//  ListingID – listing being reserved; zero when the legacy row lost
//              its back-link.
//  GuestID   – user who made the booking.
//  CheckIn   – first night of the stay (zero time when missing).
//  CheckOut  – last night of the stay, inclusive (zero time when
//              missing).
//  Status    – pending, confirmed, cancelled or completed.
//  CreatedAt – creation timestamp.
//
// Invariant: CheckIn <= CheckOut for well-formed rows.  Rows missing
// either date are treated as non-blocking by the availability
// calculator rather than failing the whole computation.
type Booking struct {
    ID        uint64    // bookings.id
    ListingID uint64    // bookings.listing_id
    GuestID   uint64    // bookings.guest_id
    CheckIn   time.Time // bookings.check_in (zero when NULL)
    CheckOut  time.Time // bookings.check_out (zero when NULL)
    Status    string    // bookings.status
    CreatedAt time.Time // bookings.created_at
}

// Blocks reports whether the booking's status is one that makes its
// listing unavailable for overlapping dates.
func (b Booking) Blocks() bool {
    return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
