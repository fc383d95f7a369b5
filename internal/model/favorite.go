package model

import "time"

// Favorite is a (user, listing) pair; existence of a row means the user
// has favorited the listing.  The favorites table carries a composite
// unique key over (user_id, listing_id) so at most one row per pair can
// exist even under concurrent toggles.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user.
//  ListingID – favorited listing.
//  CreatedAt – creation timestamp.
type Favorite struct {
    ID        uint64    // favorites.id
    UserID    uint64    // favorites.user_id
    ListingID uint64    // favorites.listing_id
    CreatedAt time.Time // favorites.created_at
}
