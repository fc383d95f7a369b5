package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/jhamir-web/voyago-web-sub000/internal/aggregate"
    "github.com/jhamir-web/voyago-web-sub000/internal/repository"
)

// FavoriteHandler exposes per-listing favorite state for the calling
// user.  The viewer is always taken from the verified token, never from
// ambient state, and is passed explicitly into the aggregation layer.
type FavoriteHandler struct {
    Favorites   *aggregate.Favorites
    ListingRepo *repository.ListingRepo
}

// NewFavoriteHandler constructs a FavoriteHandler.
func NewFavoriteHandler(fav *aggregate.Favorites, listings *repository.ListingRepo) *FavoriteHandler {
    if fav == nil || listings == nil {
        panic("nil dependency passed to NewFavoriteHandler")
    }
    return &FavoriteHandler{Favorites: fav, ListingRepo: listings}
}

// listingID parses and validates the :id path parameter and confirms
// the listing exists.  It writes the error response itself and returns
// ok=false when the request should not proceed.
func (h *FavoriteHandler) listingID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
        return 0, false
    }
    if _, err := h.ListingRepo.GetByID(c.Request().Context(), id); err != nil {
        if err == repository.ErrListingNotFound {
            _ = c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
        } else {
            _ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        return 0, false
    }
    return id, true
}

// GetFavorite handles GET /v1/listings/:id/favorite.  A store failure
// degrades to the "unknown" state rather than an error page; the card
// simply stays in its initial state.
func (h *FavoriteHandler) GetFavorite(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := h.listingID(c)
    if !ok {
        return nil
    }
    state, err := h.Favorites.State(c.Request().Context(), userID, id)
    if err != nil {
        return c.JSON(http.StatusOK, echo.Map{
            "state":   aggregate.FavoriteUnknown.String(),
            "warning": "favorite state could not be resolved",
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"state": state.String()})
}

// ToggleFavorite handles POST /v1/listings/:id/favorite.  The toggle is
// serialized per (user, listing) pair inside the aggregation layer; a
// lost duplicate-insert race is absorbed there and never surfaces here.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := h.listingID(c)
    if !ok {
        return nil
    }
    state, err := h.Favorites.Toggle(c.Request().Context(), userID, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "favorite update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"state": state.String()})
}
