// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines the public discovery API: the browse page's filtered
// listing feed and the listing detail view.  Responses are sanitized —
// host identifiers and internal status fields are never exposed.
package handler

import (
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/jhamir-web/voyago-web-sub000/internal/aggregate"
    "github.com/jhamir-web/voyago-web-sub000/internal/discovery"
    "github.com/jhamir-web/voyago-web-sub000/internal/model"
    "github.com/jhamir-web/voyago-web-sub000/internal/repository"
)

// dateLayout is the wire format for check-in/check-out query parameters.
const dateLayout = "2006-01-02"

// DiscoveryHandler aggregates the stores and the rating hub needed to
// serve the browse and detail pages.
type DiscoveryHandler struct {
    ListingRepo *repository.ListingRepo
    BookingRepo *repository.BookingRepo
    ReviewRepo  *repository.ReviewRepo
    Hub         *aggregate.Hub
}

// PublicListing is a listing as exposed to visitors.  MaxGuests reports
// the effective capacity (legacy records without the field show 1).
type PublicListing struct {
    ID          uint64           `json:"id"`
    Kind        model.Kind       `json:"kind"`
    Title       string           `json:"title"`
    Location    string           `json:"location,omitempty"`
    Description string           `json:"description,omitempty"`
    MaxGuests   int              `json:"max_guests"`
    CreatedAt   time.Time        `json:"created_at"`
    Rating      aggregate.Rating `json:"rating"`
}

func (h *DiscoveryHandler) publicListing(l model.Listing) PublicListing {
    return PublicListing{
        ID:          l.ID,
        Kind:        l.Kind,
        Title:       l.Title,
        Location:    l.Location,
        Description: l.Description,
        MaxGuests:   l.Capacity(),
        CreatedAt:   l.CreatedAt,
        Rating:      h.Hub.Rating(l.ID),
    }
}

// BrowseListings handles GET /v1/listings.  Query parameters:
//
//	category  – home (default) | experience | service
//	q         – free-text search over title, location and description
//	guests    – party size, minimum 1
//	check_in  – stay start, YYYY-MM-DD
//	check_out – stay end, YYYY-MM-DD; availability is filtered only
//	            when both dates are present
//
// A store failure never turns into a 5xx on this path: the response
// degrades to an empty (or partially filtered) item list plus a warning
// string, and the page renders what it can.
func (h *DiscoveryHandler) BrowseListings(c echo.Context) error {
    ctx := c.Request().Context()

    category := strings.ToLower(strings.TrimSpace(c.QueryParam("category")))
    if category == "" {
        category = string(model.KindHome)
    }
    kind := model.Kind(category)
    switch kind {
    case model.KindHome, model.KindExperience, model.KindService:
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category"})
    }

    guests := 1
    if raw := strings.TrimSpace(c.QueryParam("guests")); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil || n < 1 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guests"})
        }
        guests = n
    }

    var checkIn, checkOut time.Time
    if raw := strings.TrimSpace(c.QueryParam("check_in")); raw != "" {
        t, err := time.Parse(dateLayout, raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in"})
        }
        checkIn = t
    }
    if raw := strings.TrimSpace(c.QueryParam("check_out")); raw != "" {
        t, err := time.Parse(dateLayout, raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out"})
        }
        checkOut = t
    }
    if !checkIn.IsZero() && !checkOut.IsZero() && checkOut.Before(checkIn) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out before check_in"})
    }

    var warnings []string

    listings, err := h.ListingRepo.ListActive(ctx)
    if err != nil {
        // Degrade to an empty snapshot; the visitor sees an advisory,
        // not an error page.
        listings = nil
        warnings = append(warnings, "unable to load listings")
    }

    var bookings []model.Booking
    if !checkIn.IsZero() && !checkOut.IsZero() {
        bookings, err = h.BookingRepo.ListBlocking(ctx)
        if err != nil {
            // Filtering proceeds over whatever data is available: with
            // no booking snapshot the availability filter is inert.
            bookings = nil
            checkIn, checkOut = time.Time{}, time.Time{}
            warnings = append(warnings, "availability could not be checked")
        }
    }

    visible := discovery.VisibleListings(listings, bookings, discovery.Criteria{
        Kind:     kind,
        Query:    c.QueryParam("q"),
        Guests:   guests,
        CheckIn:  checkIn,
        CheckOut: checkOut,
    })

    items := make([]PublicListing, 0, len(visible))
    for _, l := range visible {
        items = append(items, h.publicListing(l))
    }
    resp := echo.Map{"items": items}
    if len(warnings) > 0 {
        resp["warning"] = strings.Join(warnings, "; ")
    }
    return c.JSON(http.StatusOK, resp)
}

// GetListing handles GET /v1/listings/:id.  Only active listings are
// discoverable; drafts and inactive listings answer 404.  Viewing a
// listing refreshes its rating aggregate from the store, so the detail
// page always shows current numbers even if the event channel lagged.
func (h *DiscoveryHandler) GetListing(c echo.Context) error {
    ctx := c.Request().Context()
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    l, err := h.ListingRepo.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrListingNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if l.Status != model.ListingStatusActive {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
    }

    // Best effort: a failed review read leaves the hub's last known
    // aggregate in place.
    if snapshot, err := h.ReviewRepo.ApprovedByListing(ctx, id); err == nil {
        h.Hub.SetReviews(id, snapshot)
    }

    return c.JSON(http.StatusOK, h.publicListing(*l))
}
