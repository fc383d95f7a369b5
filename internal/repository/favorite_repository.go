package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/jhamir-web/voyago-web-sub000/internal/aggregate"
    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// FavoriteRepo provides access to the favorites table.  The table
// carries a composite unique key over (user_id, listing_id), so the
// store itself guarantees at most one row per pair even when two
// processes race on the same toggle.  FavoriteRepo satisfies
// aggregate.FavoriteStore.
type FavoriteRepo struct {
    db *sql.DB
}

// NewFavoriteRepo returns a new FavoriteRepo bound to the given database.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
    return &FavoriteRepo{db: db}
}

// Find returns the favorite row for the pair, or nil when none exists.
// Absence is not an error; only transport failures are.
func (r *FavoriteRepo) Find(ctx context.Context, userID, listingID uint64) (*model.Favorite, error) {
    const q = `SELECT id, user_id, listing_id, created_at
               FROM favorites WHERE user_id = ? AND listing_id = ? LIMIT 1`
    var f model.Favorite
    err := r.db.QueryRowContext(ctx, q, userID, listingID).Scan(&f.ID, &f.UserID, &f.ListingID, &f.CreatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil
        }
        return nil, err
    }
    return &f, nil
}

// Insert creates a favorite row and populates the generated ID.  When
// the composite unique key rejects a concurrent duplicate, the error is
// translated to aggregate.ErrDuplicateFavorite so the toggle can treat
// it as "already favorited".
func (r *FavoriteRepo) Insert(ctx context.Context, f *model.Favorite) error {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO favorites (user_id, listing_id) VALUES (?, ?)`,
        f.UserID, f.ListingID)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return aggregate.ErrDuplicateFavorite
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    f.ID = uint64(id)
    return nil
}

// Delete removes a favorite row by primary key.  Deleting an already
// removed row is a no-op, which is exactly what a lost un-favorite race
// needs.
func (r *FavoriteRepo) Delete(ctx context.Context, id uint64) error {
    _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
    return err
}
