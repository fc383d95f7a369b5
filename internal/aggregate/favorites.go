package aggregate

import (
    "context"
    "errors"
    "sync"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// FavoriteState is the per-card favorite status for one (user, listing)
// pair.  Cards start Unknown until the first store lookup resolves, and
// fall back to Unknown whenever the viewing user changes.
type FavoriteState int

const (
    FavoriteUnknown FavoriteState = iota
    Favorited
    NotFavorited
)

func (s FavoriteState) String() string {
    switch s {
    case Favorited:
        return "favorited"
    case NotFavorited:
        return "not_favorited"
    default:
        return "unknown"
    }
}

// ErrDuplicateFavorite is returned by a FavoriteStore when an insert
// loses the race against a concurrent toggle and hits the store's
// composite unique key.  Favorites treats it as "already favorited",
// never as a user-visible failure.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// FavoriteStore is the slice of the persistence layer Favorites needs.
// Find returns nil (not an error) when no record exists for the pair.
type FavoriteStore interface {
    Find(ctx context.Context, userID, listingID uint64) (*model.Favorite, error)
    Insert(ctx context.Context, f *model.Favorite) error
    Delete(ctx context.Context, id uint64) error
}

// Favorites resolves and toggles favorite state against the store.  The
// viewing user is always an explicit parameter; nothing here reads
// ambient session state.  Toggles for the same (user, listing) pair are
// serialized behind a keyed lock so two near-simultaneous taps cannot
// both observe "not favorited" and both insert.  The store's unique key
// remains the backstop for races across processes.
type Favorites struct {
    store FavoriteStore

    mu    sync.Mutex
    locks map[[2]uint64]*sync.Mutex
}

// NewFavorites returns a Favorites backed by the given store.
func NewFavorites(store FavoriteStore) *Favorites {
    return &Favorites{store: store, locks: make(map[[2]uint64]*sync.Mutex)}
}

// pairLock returns the mutex serializing toggles for one pair.  Locks
// are created on demand and kept for the process lifetime; the pair
// space actually touched by one deployment is small.
func (f *Favorites) pairLock(userID, listingID uint64) *sync.Mutex {
    key := [2]uint64{userID, listingID}
    f.mu.Lock()
    defer f.mu.Unlock()
    l, ok := f.locks[key]
    if !ok {
        l = &sync.Mutex{}
        f.locks[key] = l
    }
    return l
}

// State resolves the current favorite status for the pair.  A store
// failure yields FavoriteUnknown with the error so callers can keep the
// card in its initial state instead of guessing.
func (f *Favorites) State(ctx context.Context, userID, listingID uint64) (FavoriteState, error) {
    rec, err := f.store.Find(ctx, userID, listingID)
    if err != nil {
        return FavoriteUnknown, err
    }
    if rec == nil {
        return NotFavorited, nil
    }
    return Favorited, nil
}

// Toggle flips the favorite state for the pair and returns the new
// state.  It is a check-then-act sequence: remove the record when one
// exists, otherwise re-check and insert.  A duplicate-key error from
// the insert means another writer won the race; the outcome is the
// same (favorited), so it is absorbed.
func (f *Favorites) Toggle(ctx context.Context, userID, listingID uint64) (FavoriteState, error) {
    lock := f.pairLock(userID, listingID)
    lock.Lock()
    defer lock.Unlock()

    rec, err := f.store.Find(ctx, userID, listingID)
    if err != nil {
        return FavoriteUnknown, err
    }
    if rec != nil {
        if err := f.store.Delete(ctx, rec.ID); err != nil {
            return FavoriteUnknown, err
        }
        return NotFavorited, nil
    }

    // Re-verify before inserting: a concurrent toggle from another
    // process may have created the record after our lookup.
    rec, err = f.store.Find(ctx, userID, listingID)
    if err != nil {
        return FavoriteUnknown, err
    }
    if rec != nil {
        return Favorited, nil
    }
    err = f.store.Insert(ctx, &model.Favorite{UserID: userID, ListingID: listingID})
    if err != nil && !errors.Is(err, ErrDuplicateFavorite) {
        return FavoriteUnknown, err
    }
    return Favorited, nil
}
