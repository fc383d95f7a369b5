// Package queue defines message payloads exchanged over the message broker.
package queue

// ReviewChangedQueueName is the durable queue carrying review moderation
// outcomes.  The rating consumer drains it to keep per-listing
// aggregates live.
const ReviewChangedQueueName = "review.changed"

// ReviewChangedEvent is published whenever moderation approves or
// rejects a review.  It carries just enough for the consumer to know
// which listing's aggregate is stale; the consumer re-reads the
// approved-review snapshot from the store rather than trusting payload
// data.
type ReviewChangedEvent struct {
    ReviewID  uint64 `json:"review_id"`
    ListingID uint64 `json:"listing_id"`
    Status    string `json:"status"`
    ChangedAt string `json:"changed_at"`
}
