package aggregate

import (
    "testing"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

func approved(rating int) model.Review {
    return model.Review{Rating: rating, Status: model.ReviewStatusApproved}
}

func TestHubZeroBeforeResolution(t *testing.T) {
    h := NewHub()
    if got := h.Rating(1); got != (Rating{}) {
        t.Fatalf("unseen listing rating = %+v, want zero", got)
    }
}

func TestHubRecomputesMean(t *testing.T) {
    h := NewHub()
    h.SetReviews(1, []model.Review{approved(5), approved(4), approved(3)})
    got := h.Rating(1)
    if got.Count != 3 || got.Average != 4.0 {
        t.Fatalf("rating = %+v, want avg 4.0 count 3", got)
    }

    // Only approved reviews count.
    h.SetReviews(1, []model.Review{
        approved(5),
        {Rating: 1, Status: model.ReviewStatusPending},
        {Rating: 1, Status: model.ReviewStatusRejected},
    })
    got = h.Rating(1)
    if got.Count != 1 || got.Average != 5.0 {
        t.Fatalf("rating = %+v, want avg 5.0 count 1", got)
    }

    // An empty snapshot resets to zero.
    h.SetReviews(1, nil)
    if got := h.Rating(1); got != (Rating{}) {
        t.Fatalf("rating after reset = %+v, want zero", got)
    }
}

func TestHubSubscribeNotifiesAndCancels(t *testing.T) {
    h := NewHub()
    h.SetReviews(7, []model.Review{approved(4)})

    var seen []Rating
    current, cancel := h.Subscribe(7, func(r Rating) { seen = append(seen, r) })
    if current.Count != 1 || current.Average != 4.0 {
        t.Fatalf("current at subscribe = %+v", current)
    }

    h.SetReviews(7, []model.Review{approved(4), approved(2)})
    if len(seen) != 1 || seen[0].Count != 2 || seen[0].Average != 3.0 {
        t.Fatalf("after update seen = %+v", seen)
    }

    cancel()
    h.SetReviews(7, []model.Review{approved(1)})
    if len(seen) != 1 {
        t.Fatalf("callback fired after cancel: %+v", seen)
    }
}

// Every card must tear down its subscription; Subscribers is the leak
// detector.  Double-cancel must not disturb other subscriptions.
func TestHubSubscriberTeardown(t *testing.T) {
    h := NewHub()
    _, cancelA := h.Subscribe(3, func(Rating) {})
    _, cancelB := h.Subscribe(3, func(Rating) {})
    if n := h.Subscribers(3); n != 2 {
        t.Fatalf("subscribers = %d, want 2", n)
    }
    cancelA()
    cancelA() // idempotent
    if n := h.Subscribers(3); n != 1 {
        t.Fatalf("subscribers after cancel = %d, want 1", n)
    }
    cancelB()
    if n := h.Subscribers(3); n != 0 {
        t.Fatalf("subscribers after full teardown = %d, want 0", n)
    }
}

func TestHubDrop(t *testing.T) {
    h := NewHub()
    h.SetReviews(9, []model.Review{approved(5)})
    _, _ = h.Subscribe(9, func(Rating) {})
    h.Drop(9)
    if got := h.Rating(9); got != (Rating{}) {
        t.Fatalf("rating after drop = %+v, want zero", got)
    }
    if n := h.Subscribers(9); n != 0 {
        t.Fatalf("subscribers after drop = %d, want 0", n)
    }
}
