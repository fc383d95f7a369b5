package discovery

import (
    "sort"
    "strings"
    "time"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// Criteria captures everything the visitor has entered on the browse
// page.  Kind selects the discovery bucket; Query is matched
// case-insensitively as a substring of title, location or description;
// Guests is the party size; CheckIn/CheckOut enable the availability
// filter only when both are set.
type Criteria struct {
    Kind     model.Kind
    Query    string
    Guests   int
    CheckIn  time.Time
    CheckOut time.Time
}

// datesSet reports whether both ends of the candidate stay are present.
// Availability is only consulted when they are; a half-entered date
// range filters nothing.
func (c Criteria) datesSet() bool {
    return !c.CheckIn.IsZero() && !c.CheckOut.IsZero()
}

// VisibleListings reduces the full listing snapshot to the ordered
// result set for the given criteria.  Filters are an unordered
// conjunction: a listing must match the selected bucket, the search
// query (when non-empty), the guest capacity, and must not appear in
// the unavailable set derived from the booking snapshot (when dates are
// set).  Results are sorted newest first by creation time; the sort is
// stable so store order breaks ties, making the output fully
// deterministic for identical inputs.
func VisibleListings(listings []model.Listing, bookings []model.Booking, c Criteria) []model.Listing {
    var unavailable map[uint64]struct{}
    if c.datesSet() {
        unavailable = UnavailableListings(bookings, c.CheckIn, c.CheckOut)
    }

    out := make([]model.Listing, 0, len(listings))
    for _, l := range listings {
        kind := l.Kind
        if kind == "" {
            kind = Classify(l)
        }
        if kind != c.Kind {
            continue
        }
        if !matchesQuery(l, c.Query) {
            continue
        }
        if c.Guests > 0 && l.Capacity() < c.Guests {
            continue
        }
        if unavailable != nil {
            if _, blocked := unavailable[l.ID]; blocked {
                continue
            }
        }
        out = append(out, l)
    }

    sort.SliceStable(out, func(i, j int) bool {
        return out[i].CreatedAt.After(out[j].CreatedAt)
    })
    return out
}

// matchesQuery reports whether the listing's title, location or
// description contains the query, ignoring case.  An empty query
// matches everything.
func matchesQuery(l model.Listing, query string) bool {
    q := strings.ToLower(strings.TrimSpace(query))
    if q == "" {
        return true
    }
    return strings.Contains(strings.ToLower(l.Title), q) ||
        strings.Contains(strings.ToLower(l.Location), q) ||
        strings.Contains(strings.ToLower(l.Description), q)
}
