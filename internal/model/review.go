package model

import "time"

// Review statuses.  Only approved reviews count toward a listing's
// aggregate rating.
const (
    ReviewStatusPending  = "pending"
    ReviewStatusApproved = "approved"
    ReviewStatusRejected = "rejected"
)

// Review is a rating left against a listing by a guest.  Reviews enter
// the system as pending and become visible to the aggregation layer only
// after moderation approves them.
//
// Fields:
//  ID        – primary key identifier.
//  ListingID – listing being reviewed.
//  UserID    – author of the review.
//  Rating    – integer 1–5.
//  Comment   – optional free text.
//  Status    – pending, approved or rejected.
//  CreatedAt – creation timestamp.
type Review struct {
    ID        uint64    // reviews.id
    ListingID uint64    // reviews.listing_id
    UserID    uint64    // reviews.user_id
    Rating    int       // reviews.rating
    Comment   string    // reviews.comment
    Status    string    // reviews.status
    CreatedAt time.Time // reviews.created_at
}
