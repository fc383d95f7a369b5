package aggregate

import (
    "context"
    "errors"
    "sync"
    "testing"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// fakeFavoriteStore is an in-memory FavoriteStore enforcing the same
// composite unique key as the real table.
type fakeFavoriteStore struct {
    mu     sync.Mutex
    nextID uint64
    rows   map[uint64]model.Favorite

    findErr   error
    insertErr error
}

func newFakeFavoriteStore() *fakeFavoriteStore {
    return &fakeFavoriteStore{rows: make(map[uint64]model.Favorite)}
}

func (s *fakeFavoriteStore) Find(_ context.Context, userID, listingID uint64) (*model.Favorite, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.findErr != nil {
        return nil, s.findErr
    }
    for _, f := range s.rows {
        if f.UserID == userID && f.ListingID == listingID {
            rec := f
            return &rec, nil
        }
    }
    return nil, nil
}

func (s *fakeFavoriteStore) Insert(_ context.Context, f *model.Favorite) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.insertErr != nil {
        return s.insertErr
    }
    for _, existing := range s.rows {
        if existing.UserID == f.UserID && existing.ListingID == f.ListingID {
            return ErrDuplicateFavorite
        }
    }
    s.nextID++
    f.ID = s.nextID
    s.rows[f.ID] = *f
    return nil
}

func (s *fakeFavoriteStore) Delete(_ context.Context, id uint64) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.rows, id)
    return nil
}

func (s *fakeFavoriteStore) count() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.rows)
}

func TestFavoritesStateResolution(t *testing.T) {
    store := newFakeFavoriteStore()
    fav := NewFavorites(store)
    ctx := context.Background()

    state, err := fav.State(ctx, 1, 10)
    if err != nil || state != NotFavorited {
        t.Fatalf("state = %v, err = %v; want not_favorited", state, err)
    }

    if _, err := fav.Toggle(ctx, 1, 10); err != nil {
        t.Fatalf("toggle: %v", err)
    }
    state, err = fav.State(ctx, 1, 10)
    if err != nil || state != Favorited {
        t.Fatalf("state = %v, err = %v; want favorited", state, err)
    }
}

func TestFavoritesStateUnknownOnStoreError(t *testing.T) {
    store := newFakeFavoriteStore()
    store.findErr = errors.New("store unreachable")
    fav := NewFavorites(store)

    state, err := fav.State(context.Background(), 1, 10)
    if err == nil {
        t.Fatal("expected error")
    }
    if state != FavoriteUnknown {
        t.Fatalf("state = %v, want unknown", state)
    }
}

func TestFavoritesToggleFlips(t *testing.T) {
    store := newFakeFavoriteStore()
    fav := NewFavorites(store)
    ctx := context.Background()

    state, err := fav.Toggle(ctx, 2, 20)
    if err != nil || state != Favorited {
        t.Fatalf("first toggle = %v, err = %v", state, err)
    }
    if store.count() != 1 {
        t.Fatalf("rows = %d, want 1", store.count())
    }

    state, err = fav.Toggle(ctx, 2, 20)
    if err != nil || state != NotFavorited {
        t.Fatalf("second toggle = %v, err = %v", state, err)
    }
    if store.count() != 0 {
        t.Fatalf("rows = %d, want 0", store.count())
    }
}

// Two concurrent bursts of toggles for the same pair must never leave a
// duplicate row behind: the keyed lock serializes them in process and
// the store's unique key catches anything else.
func TestFavoritesToggleNoDuplicatesUnderRace(t *testing.T) {
    store := newFakeFavoriteStore()
    fav := NewFavorites(store)
    ctx := context.Background()

    const workers = 8
    var wg sync.WaitGroup
    wg.Add(workers)
    for i := 0; i < workers; i++ {
        go func() {
            defer wg.Done()
            for j := 0; j < 25; j++ {
                if _, err := fav.Toggle(ctx, 5, 50); err != nil {
                    t.Errorf("toggle: %v", err)
                    return
                }
            }
        }()
    }
    wg.Wait()

    if n := store.count(); n > 1 {
        t.Fatalf("duplicate favorites: %d rows for one pair", n)
    }
}

func TestFavoritesToggleAbsorbsDuplicateInsert(t *testing.T) {
    store := newFakeFavoriteStore()
    fav := NewFavorites(store)
    ctx := context.Background()

    // Simulate another process winning the race between the re-check
    // and the insert.
    store.insertErr = ErrDuplicateFavorite
    state, err := fav.Toggle(ctx, 3, 30)
    if err != nil {
        t.Fatalf("duplicate insert surfaced as error: %v", err)
    }
    if state != Favorited {
        t.Fatalf("state = %v, want favorited", state)
    }
}
