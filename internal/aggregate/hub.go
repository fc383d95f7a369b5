// Package aggregate maintains the live per-listing annotations shown on
// listing cards: the approved-review rating average and the viewer's
// favorite state.  It never gates the discovery result set; listings
// render first and these values resolve independently.
package aggregate

import (
    "sync"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// Rating is the derived aggregate over a listing's approved reviews.
// The zero value (no average, zero count) is the state of every listing
// before its reviews have resolved, and the UI must tolerate it.
type Rating struct {
    Average float64 `json:"average"`
    Count   int     `json:"count"`
}

// Hub is the in-process fan-out point for rating updates.  The review
// event consumer pushes fresh review snapshots in; listing cards
// subscribe per listing and receive a callback on every change.  Every
// subscription must be torn down with its cancel function when the card
// leaves the visible set, otherwise one live subscription leaks per
// listing ever rendered.
type Hub struct {
    mu      sync.RWMutex
    ratings map[uint64]Rating
    subs    map[uint64]map[uint64]func(Rating)
    nextSub uint64
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
    return &Hub{
        ratings: make(map[uint64]Rating),
        subs:    make(map[uint64]map[uint64]func(Rating)),
    }
}

// Rating returns the current aggregate for a listing.  Listings the hub
// has never seen report the zero Rating.
func (h *Hub) Rating(listingID uint64) Rating {
    h.mu.RLock()
    defer h.mu.RUnlock()
    return h.ratings[listingID]
}

// Subscribe registers fn to be invoked on every rating change for the
// listing and returns the current value alongside a cancel function.
// Cancel removes exactly this subscription and is safe to call more
// than once.  Callbacks run synchronously under the hub's lock, so they
// must not call back into the hub; hand off to a channel or goroutine
// if more work is needed.
func (h *Hub) Subscribe(listingID uint64, fn func(Rating)) (Rating, func()) {
    h.mu.Lock()
    defer h.mu.Unlock()
    h.nextSub++
    id := h.nextSub
    if h.subs[listingID] == nil {
        h.subs[listingID] = make(map[uint64]func(Rating))
    }
    h.subs[listingID][id] = fn
    current := h.ratings[listingID]

    cancel := func() {
        h.mu.Lock()
        defer h.mu.Unlock()
        if m, ok := h.subs[listingID]; ok {
            delete(m, id)
            if len(m) == 0 {
                delete(h.subs, listingID)
            }
        }
    }
    return current, cancel
}

// Subscribers reports how many live subscriptions exist for a listing.
// Teardown bugs show up here: the count must return to zero once every
// rendered card has cancelled.
func (h *Hub) Subscribers(listingID uint64) int {
    h.mu.RLock()
    defer h.mu.RUnlock()
    return len(h.subs[listingID])
}

// SetReviews recomputes the listing's aggregate from a fresh snapshot
// of its reviews and notifies subscribers.  Only approved reviews count;
// the mean is recomputed in full on every change rather than adjusted
// incrementally.  Passing an empty or all-unapproved snapshot resets
// the listing to the zero Rating.
func (h *Hub) SetReviews(listingID uint64, reviews []model.Review) {
    sum, count := 0, 0
    for _, r := range reviews {
        if r.Status != model.ReviewStatusApproved {
            continue
        }
        sum += r.Rating
        count++
    }
    var rating Rating
    if count > 0 {
        rating = Rating{Average: float64(sum) / float64(count), Count: count}
    }

    h.mu.Lock()
    defer h.mu.Unlock()
    h.ratings[listingID] = rating
    for _, fn := range h.subs[listingID] {
        fn(rating)
    }
}

// Drop forgets a listing's aggregate and all of its subscriptions.
// Used when a listing leaves the active set entirely.
func (h *Hub) Drop(listingID uint64) {
    h.mu.Lock()
    defer h.mu.Unlock()
    delete(h.ratings, listingID)
    delete(h.subs, listingID)
}
