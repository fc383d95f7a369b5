package discovery

import (
    "reflect"
    "testing"
    "time"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

func created(t *testing.T, s string) time.Time {
    t.Helper()
    d, err := time.Parse("2006-01-02", s)
    if err != nil {
        t.Fatalf("bad date %q: %v", s, err)
    }
    return d
}

func ids(listings []model.Listing) []uint64 {
    out := make([]uint64, 0, len(listings))
    for _, l := range listings {
        out = append(out, l.ID)
    }
    return out
}

// The scenario from the browse page: three listings, a home search for
// three guests must return only the home with enough capacity.
func TestVisibleListingsCategoryAndCapacity(t *testing.T) {
    listings := []model.Listing{
        {ID: 1, Title: "Seaside cabin", MaxGuests: 2, Status: model.ListingStatusActive, CreatedAt: created(t, "2024-01-01")},
        {ID: 2, Title: "City loft", MaxGuests: 4, Status: model.ListingStatusActive, CreatedAt: created(t, "2024-01-02")},
        {ID: 3, Title: "Reef snorkeling", ActivityType: "snorkeling", Status: model.ListingStatusActive, CreatedAt: created(t, "2024-01-03")},
    }
    got := VisibleListings(listings, nil, Criteria{Kind: model.KindHome, Guests: 3})
    if want := []uint64{2}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("got %v, want %v", ids(got), want)
    }
}

func TestVisibleListingsGuestBoundary(t *testing.T) {
    listings := []model.Listing{
        {ID: 1, MaxGuests: 4, CreatedAt: created(t, "2024-01-01")},
        {ID: 2, CreatedAt: created(t, "2024-01-02")}, // max_guests never set -> capacity 1
    }
    got := VisibleListings(listings, nil, Criteria{Kind: model.KindHome, Guests: 4})
    if want := []uint64{1}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("guests=4: got %v, want %v", ids(got), want)
    }
    got = VisibleListings(listings, nil, Criteria{Kind: model.KindHome, Guests: 5})
    if len(got) != 0 {
        t.Fatalf("guests=5: got %v, want none", ids(got))
    }
    got = VisibleListings(listings, nil, Criteria{Kind: model.KindHome, Guests: 1})
    if want := []uint64{2, 1}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("guests=1: got %v, want %v", ids(got), want)
    }
}

func TestVisibleListingsSearch(t *testing.T) {
    listings := []model.Listing{
        {ID: 1, Title: "Mountain view cabin", Location: "Banaue", CreatedAt: created(t, "2024-01-01")},
        {ID: 2, Title: "Loft", Location: "Cebu City", Description: "near the MOUNTAIN trailhead", CreatedAt: created(t, "2024-01-02")},
        {ID: 3, Title: "Beach hut", Location: "Siargao", CreatedAt: created(t, "2024-01-03")},
    }
    got := VisibleListings(listings, nil, Criteria{Kind: model.KindHome, Query: "mountain"})
    if want := []uint64{2, 1}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("got %v, want %v", ids(got), want)
    }
    got = VisibleListings(listings, nil, Criteria{Kind: model.KindHome, Query: "  CEBU "})
    if want := []uint64{2}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("got %v, want %v", ids(got), want)
    }
}

func TestVisibleListingsAvailability(t *testing.T) {
    listings := []model.Listing{
        {ID: 1, Title: "Lakeside house", CreatedAt: created(t, "2024-01-01")},
        {ID: 2, Title: "Forest cabin", CreatedAt: created(t, "2024-01-02")},
    }
    bookings := []model.Booking{
        {ListingID: 1, CheckIn: created(t, "2024-01-05"), CheckOut: created(t, "2024-01-10"), Status: model.BookingStatusConfirmed},
    }

    c := Criteria{Kind: model.KindHome, CheckIn: created(t, "2024-01-08"), CheckOut: created(t, "2024-01-12")}
    got := VisibleListings(listings, bookings, c)
    if want := []uint64{2}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("dates set: got %v, want %v", ids(got), want)
    }

    // Without both dates the availability filter is inert.
    c.CheckOut = time.Time{}
    got = VisibleListings(listings, bookings, c)
    if want := []uint64{2, 1}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("dates unset: got %v, want %v", ids(got), want)
    }
}

// Relaxing any single criterion never shrinks the result set.
func TestVisibleListingsConjunction(t *testing.T) {
    listings := []model.Listing{
        {ID: 1, Title: "Cabin by the sea", MaxGuests: 2, CreatedAt: created(t, "2024-01-01")},
        {ID: 2, Title: "Sea view loft", MaxGuests: 6, CreatedAt: created(t, "2024-01-02")},
        {ID: 3, Title: "Garden studio", MaxGuests: 3, CreatedAt: created(t, "2024-01-03")},
    }
    bookings := []model.Booking{
        {ListingID: 3, CheckIn: created(t, "2024-02-01"), CheckOut: created(t, "2024-02-05"), Status: model.BookingStatusPending},
    }
    full := Criteria{
        Kind:     model.KindHome,
        Query:    "sea",
        Guests:   2,
        CheckIn:  created(t, "2024-02-03"),
        CheckOut: created(t, "2024-02-04"),
    }
    base := len(VisibleListings(listings, bookings, full))

    relaxed := []Criteria{
        {Kind: full.Kind, Guests: full.Guests, CheckIn: full.CheckIn, CheckOut: full.CheckOut}, // no query
        {Kind: full.Kind, Query: full.Query, CheckIn: full.CheckIn, CheckOut: full.CheckOut},   // no guests
        {Kind: full.Kind, Query: full.Query, Guests: full.Guests},                              // no dates
    }
    for i, c := range relaxed {
        if got := len(VisibleListings(listings, bookings, c)); got < base {
            t.Fatalf("relaxing criterion %d shrank the result set: %d < %d", i, got, base)
        }
    }
}

func TestVisibleListingsOrderingAndIdempotence(t *testing.T) {
    same := created(t, "2024-01-02")
    listings := []model.Listing{
        {ID: 1, CreatedAt: created(t, "2024-01-01")},
        {ID: 2, CreatedAt: same},
        {ID: 3, CreatedAt: same}, // tie with 2; store order must hold
        {ID: 4, CreatedAt: created(t, "2024-01-03")},
    }
    c := Criteria{Kind: model.KindHome}
    first := VisibleListings(listings, nil, c)
    if want := []uint64{4, 2, 3, 1}; !reflect.DeepEqual(ids(first), want) {
        t.Fatalf("got %v, want %v", ids(first), want)
    }
    second := VisibleListings(listings, nil, c)
    if !reflect.DeepEqual(first, second) {
        t.Fatalf("identical inputs produced different outputs")
    }
}

// Output must always be a subset of the input, and pre-tagged kinds are
// trusted over re-classification.
func TestVisibleListingsUsesDerivedKind(t *testing.T) {
    listings := []model.Listing{
        Tag(model.Listing{ID: 1, ServiceType: "catering", CreatedAt: created(t, "2024-01-01")}),
        Tag(model.Listing{ID: 2, ActivityType: "hiking", CreatedAt: created(t, "2024-01-02")}),
    }
    got := VisibleListings(listings, nil, Criteria{Kind: model.KindService})
    if want := []uint64{1}; !reflect.DeepEqual(ids(got), want) {
        t.Fatalf("got %v, want %v", ids(got), want)
    }
}
