package discovery

import (
    "time"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// UnavailableListings returns the set of listing IDs that cannot host a
// stay over the candidate [checkIn, checkOut] range because a pending or
// confirmed booking overlaps it.  Both ends of both ranges are treated
// as inclusive nights, so a booking ending on the 15th does not block a
// stay starting on the 16th but does block one starting on the 15th.
//
// Bookings missing either date or the listing back-link are skipped as
// non-blocking; one malformed legacy row must not fail the whole query.
// The computation is a full re-scan of the snapshot on every call —
// booking volumes per query are small enough that incremental tracking
// is not worth the bookkeeping.
func UnavailableListings(bookings []model.Booking, checkIn, checkOut time.Time) map[uint64]struct{} {
    unavailable := make(map[uint64]struct{})
    if checkIn.IsZero() || checkOut.IsZero() {
        return unavailable
    }
    for _, b := range bookings {
        if !b.Blocks() {
            continue
        }
        if b.ListingID == 0 || b.CheckIn.IsZero() || b.CheckOut.IsZero() {
            continue
        }
        if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
            unavailable[b.ListingID] = struct{}{}
        }
    }
    return unavailable
}

// Overlaps reports whether two inclusive date ranges intersect, using
// the standard interval test: aStart <= bEnd && aEnd >= bStart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
    return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
