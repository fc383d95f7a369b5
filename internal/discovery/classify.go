// Package discovery implements the listing discovery engine: the pure
// computation that turns the raw listing snapshot, the booking snapshot
// and the visitor's criteria into the ordered result set shown on the
// browse page.  Nothing in this package touches the database or the
// network; callers feed it materialized data.
package discovery

import (
    "strings"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

// Classify maps a listing onto exactly one discovery bucket.  Legacy
// records can simultaneously carry a place subtype and an activity
// subtype (converted records do), so the precedence below resolves
// conflicts deterministically instead of letting a listing surface in
// two buckets:
//
//  1. An activity marker or category "experience" makes it an
//     experience, unless a service marker is also present — a service
//     is never mis-tagged as an experience.
//  2. A service marker or category "service" makes it a service.
//  3. Everything else is a home: an explicit place subtype, one of the
//     legacy stay categories, or no marker at all ("a place to stay
//     unless proven otherwise").
//
// The function is total: every listing maps to exactly one Kind.
func Classify(l model.Listing) model.Kind {
    category := strings.ToLower(strings.TrimSpace(l.Category))
    hasActivity := strings.TrimSpace(l.ActivityType) != ""
    hasService := strings.TrimSpace(l.ServiceType) != ""

    if category == "experience" || hasActivity {
        if hasService {
            return model.KindService
        }
        return model.KindExperience
    }
    if category == "service" || hasService {
        return model.KindService
    }
    return model.KindHome
}

// Tag returns the listing with its derived Kind populated.  Repositories
// call this once per row at ingestion so the filter pipeline never
// re-infers the bucket from the legacy fields.
func Tag(l model.Listing) model.Listing {
    l.Kind = Classify(l)
    return l
}
