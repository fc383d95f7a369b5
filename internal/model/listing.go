package model

import "time"

// Kind is the closed discovery bucket assigned to every listing.  Legacy
// records carry a loose mix of category/subtype strings; Kind is derived
// from them exactly once when a listing is loaded and is the only value
// the filter pipeline consults afterwards.
type Kind string

const (
    KindHome       Kind = "home"       // a place to stay
    KindExperience Kind = "experience" // a guided activity
    KindService    Kind = "service"    // a bookable service
)

// Listing statuses.  Only active listings are discoverable; listings are
// never hard-deleted, they transition to inactive instead.
const (
    ListingStatusActive   = "active"
    ListingStatusDraft    = "draft"
    ListingStatusInactive = "inactive"
)

// Listing represents a published or draft marketplace offering.  The
// category and *Type fields are free-form legacy markers written by the
// publication workflow over several schema generations; their
// interpretation is centralized in the discovery package.
//
// Fields:
//  ID           – primary key identifier.
//  HostID       – user who published the listing.
//  Title        – short display title, searched as free text.
//  Location     – free-text place name, searched as free text.
//  Description  – long free text, searched as free text.
//  Category     – legacy tag ("resort", "hotel", "transient", "place",
//                 "experience", "service" or empty).
//  PlaceType    – optional subtype marker for stays.
//  ActivityType – optional subtype marker for experiences.
//  ServiceType  – optional subtype marker for services.
//  MaxGuests    – guest capacity; zero means the field was never set and
//                 is treated as capacity 1.
//  Status       – active, draft or inactive.
//  Kind         – derived discovery bucket; not a stored column.
//  CreatedAt    – creation timestamp, drives newest-first ordering.
//  UpdatedAt    – last update timestamp.
type Listing struct {
    ID           uint64    // listings.id
    HostID       uint64    // listings.host_id
    Title        string    // listings.title
    Location     string    // listings.location
    Description  string    // listings.description
    Category     string    // listings.category (legacy, free-form)
    PlaceType    string    // listings.place_type ("" when absent)
    ActivityType string    // listings.activity_type ("" when absent)
    ServiceType  string    // listings.service_type ("" when absent)
    MaxGuests    uint32    // listings.max_guests (0 when absent)
    Status       string    // listings.status
    Kind         Kind      // derived, see discovery.Classify
    CreatedAt    time.Time // listings.created_at
    UpdatedAt    time.Time // listings.updated_at
}

// Capacity returns the effective guest capacity, applying the legacy
// default of 1 for records that never had max_guests set.
func (l Listing) Capacity() int {
    if l.MaxGuests == 0 {
        return 1
    }
    return int(l.MaxGuests)
}
