package discovery

import (
    "testing"
    "time"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

func day(t *testing.T, s string) time.Time {
    t.Helper()
    d, err := time.Parse("2006-01-02", s)
    if err != nil {
        t.Fatalf("bad date %q: %v", s, err)
    }
    return d
}

func TestUnavailableListingsOverlap(t *testing.T) {
    booking := model.Booking{
        ID:        1,
        ListingID: 42,
        CheckIn:   day(t, "2024-03-10"),
        CheckOut:  day(t, "2024-03-15"),
        Status:    model.BookingStatusConfirmed,
    }

    cases := []struct {
        name     string
        checkIn  string
        checkOut string
        blocked  bool
    }{
        {"overlapping tail", "2024-03-12", "2024-03-20", true},
        {"overlapping head", "2024-03-01", "2024-03-10", true},
        {"fully inside", "2024-03-11", "2024-03-12", true},
        {"fully covering", "2024-03-01", "2024-03-31", true},
        {"same-day boundary blocks", "2024-03-15", "2024-03-20", true},
        {"day after checkout is free", "2024-03-16", "2024-03-20", false},
        {"day before checkin is free", "2024-03-01", "2024-03-09", false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            set := UnavailableListings([]model.Booking{booking}, day(t, tc.checkIn), day(t, tc.checkOut))
            _, got := set[42]
            if got != tc.blocked {
                t.Fatalf("blocked = %v, want %v", got, tc.blocked)
            }
        })
    }
}

func TestUnavailableListingsStatusGate(t *testing.T) {
    in, out := day(t, "2024-03-12"), day(t, "2024-03-14")
    mk := func(status string) model.Booking {
        return model.Booking{ListingID: 7, CheckIn: day(t, "2024-03-10"), CheckOut: day(t, "2024-03-15"), Status: status}
    }
    for _, status := range []string{model.BookingStatusPending, model.BookingStatusConfirmed} {
        set := UnavailableListings([]model.Booking{mk(status)}, in, out)
        if _, ok := set[7]; !ok {
            t.Fatalf("status %q should block", status)
        }
    }
    for _, status := range []string{model.BookingStatusCancelled, model.BookingStatusCompleted} {
        set := UnavailableListings([]model.Booking{mk(status)}, in, out)
        if _, ok := set[7]; ok {
            t.Fatalf("status %q should not block", status)
        }
    }
}

// Malformed legacy rows are skipped, never fatal: a booking without
// dates or without its listing back-link simply does not block.
func TestUnavailableListingsSkipsMalformed(t *testing.T) {
    in, out := day(t, "2024-03-12"), day(t, "2024-03-14")
    bookings := []model.Booking{
        {ListingID: 1, CheckOut: day(t, "2024-03-15"), Status: model.BookingStatusConfirmed},                                // no check-in
        {ListingID: 2, CheckIn: day(t, "2024-03-10"), Status: model.BookingStatusConfirmed},                                 // no check-out
        {ListingID: 0, CheckIn: day(t, "2024-03-10"), CheckOut: day(t, "2024-03-15"), Status: model.BookingStatusConfirmed}, // no listing
    }
    set := UnavailableListings(bookings, in, out)
    if len(set) != 0 {
        t.Fatalf("expected empty set, got %v", set)
    }
}

func TestUnavailableListingsEmptyRange(t *testing.T) {
    b := model.Booking{ListingID: 9, CheckIn: day(t, "2024-03-10"), CheckOut: day(t, "2024-03-15"), Status: model.BookingStatusConfirmed}
    if set := UnavailableListings([]model.Booking{b}, time.Time{}, day(t, "2024-03-15")); len(set) != 0 {
        t.Fatalf("missing check-in should disable the filter, got %v", set)
    }
    if set := UnavailableListings([]model.Booking{b}, day(t, "2024-03-10"), time.Time{}); len(set) != 0 {
        t.Fatalf("missing check-out should disable the filter, got %v", set)
    }
}
