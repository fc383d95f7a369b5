package handler

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
    "github.com/jhamir-web/voyago-web-sub000/internal/queue"
    "github.com/jhamir-web/voyago-web-sub000/internal/repository"
    queue_publisher "github.com/jhamir-web/voyago-web-sub000/internal/service"
)

// ReviewHandler covers review submission by guests and moderation by
// admins.  Moderation outcomes are published to the review.changed
// queue; the background consumer picks them up and refreshes the rating
// hub, so the handler itself never recomputes aggregates.
type ReviewHandler struct {
    ReviewRepo  *repository.ReviewRepo
    ListingRepo *repository.ListingRepo
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviews *repository.ReviewRepo, listings *repository.ListingRepo) *ReviewHandler {
    if reviews == nil || listings == nil {
        panic("nil dependency passed to NewReviewHandler")
    }
    return &ReviewHandler{ReviewRepo: reviews, ListingRepo: listings}
}

type createReviewReq struct {
    Rating  int    `json:"rating"`
    Comment string `json:"comment"`
}

// CreateReview handles POST /v1/listings/:id/reviews.  Reviews enter as
// pending and do not affect the listing's aggregate until moderation
// approves them.  Hosts cannot review their own listings.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    listingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || listingID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req createReviewReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.Rating < 1 || req.Rating > 5 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
    }

    ctx := c.Request().Context()
    l, err := h.ListingRepo.GetByID(ctx, listingID)
    if err != nil {
        if err == repository.ErrListingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if l.Status != model.ListingStatusActive {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
    }
    if l.HostID == userID {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot review your own listing"})
    }

    rev := model.Review{
        ListingID: listingID,
        UserID:    userID,
        Rating:    req.Rating,
        Comment:   req.Comment,
    }
    if err := h.ReviewRepo.Create(ctx, &rev); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "id":     rev.ID,
        "status": rev.Status,
    })
}

// ApproveReview handles POST /v1/reviews/:id/approve (admin only).
func (h *ReviewHandler) ApproveReview(c echo.Context) error {
    return h.moderate(c, model.ReviewStatusApproved)
}

// RejectReview handles POST /v1/reviews/:id/reject (admin only).
func (h *ReviewHandler) RejectReview(c echo.Context) error {
    return h.moderate(c, model.ReviewStatusRejected)
}

// moderate transitions a review and announces the change on the broker.
// A publish failure is deliberately non-fatal: the status change is
// already durable, and the aggregate catches up on the next event or
// the next detail view.
func (h *ReviewHandler) moderate(c echo.Context, status string) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx := c.Request().Context()
    rev, err := h.ReviewRepo.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrReviewNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if err := h.ReviewRepo.SetStatus(ctx, id, status); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update review failed"})
    }

    _ = queue_publisher.PublishReviewChanged(ctx, queue.ReviewChangedEvent{
        ReviewID:  rev.ID,
        ListingID: rev.ListingID,
        Status:    status,
        ChangedAt: time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusOK, echo.Map{
        "id":     rev.ID,
        "status": status,
    })
}
