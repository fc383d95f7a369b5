package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// ErrReviewNotFound is returned when a review cannot be found in the DB.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepo provides access to the reviews table.  Reviews are created
// as pending by guests and moderated into approved or rejected; only
// approved reviews feed the rating hub.
type ReviewRepo struct {
    db *sql.DB
}

// NewReviewRepo returns a new ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
    return &ReviewRepo{db: db}
}

// Create inserts a pending review and populates the generated ID.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) error {
    const q = `INSERT INTO reviews (listing_id, user_id, rating, comment, status)
               VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, rev.ListingID, rev.UserID, rev.Rating, rev.Comment, model.ReviewStatusPending)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    rev.ID = uint64(id)
    rev.Status = model.ReviewStatusPending
    return nil
}

// GetByID fetches a review by id.  It returns ErrReviewNotFound when no
// row exists.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
    const q = `SELECT id, listing_id, user_id, rating, comment, status, created_at
               FROM reviews WHERE id = ?`
    var (
        rev     model.Review
        comment sql.NullString
    )
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &rev.ID, &rev.ListingID, &rev.UserID, &rev.Rating, &comment, &rev.Status, &rev.CreatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrReviewNotFound
        }
        return nil, err
    }
    rev.Comment = comment.String
    return &rev, nil
}

// SetStatus transitions a review to the given status.  It returns
// ErrReviewNotFound when the review does not exist.
func (r *ReviewRepo) SetStatus(ctx context.Context, id uint64, status string) error {
    res, err := r.db.ExecContext(ctx, `UPDATE reviews SET status = ? WHERE id = ?`, status, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrReviewNotFound
    }
    return nil
}

// ApprovedByListing returns the full approved-review snapshot for one
// listing.  The rating hub recomputes its aggregate from this snapshot
// on every change rather than adjusting incrementally.
func (r *ReviewRepo) ApprovedByListing(ctx context.Context, listingID uint64) ([]model.Review, error) {
    const q = `SELECT id, listing_id, user_id, rating, comment, status, created_at
               FROM reviews
               WHERE listing_id = ? AND status = ?
               ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, listingID, model.ReviewStatusApproved)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    reviews := make([]model.Review, 0)
    for rows.Next() {
        var (
            rev     model.Review
            comment sql.NullString
        )
        if err := rows.Scan(&rev.ID, &rev.ListingID, &rev.UserID, &rev.Rating, &comment, &rev.Status, &rev.CreatedAt); err != nil {
            return nil, err
        }
        rev.Comment = comment.String
        reviews = append(reviews, rev)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return reviews, nil
}
