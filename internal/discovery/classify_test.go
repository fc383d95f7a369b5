package discovery

import (
    "testing"

    "github.com/jhamir-web/voyago-web-sub000/internal/model"
)

func TestClassifyPrecedence(t *testing.T) {
    cases := []struct {
        name    string
        listing model.Listing
        want    model.Kind
    }{
        {"empty record defaults to home", model.Listing{}, model.KindHome},
        {"place subtype", model.Listing{PlaceType: "house"}, model.KindHome},
        {"legacy resort category", model.Listing{Category: "resort"}, model.KindHome},
        {"legacy hotel category", model.Listing{Category: "hotel"}, model.KindHome},
        {"legacy transient category", model.Listing{Category: "transient"}, model.KindHome},
        {"legacy place category", model.Listing{Category: "place"}, model.KindHome},
        {"experience category", model.Listing{Category: "experience"}, model.KindExperience},
        {"activity subtype", model.Listing{ActivityType: "hiking"}, model.KindExperience},
        {"service category", model.Listing{Category: "service"}, model.KindService},
        {"service subtype", model.Listing{ServiceType: "catering"}, model.KindService},
        {"service wins over activity", model.Listing{ActivityType: "hiking", ServiceType: "catering"}, model.KindService},
        {"service wins over experience category", model.Listing{Category: "experience", ServiceType: "catering"}, model.KindService},
        {"activity wins over place subtype", model.Listing{PlaceType: "house", ActivityType: "kayaking"}, model.KindExperience},
        {"unknown category falls back to home", model.Listing{Category: "garbage"}, model.KindHome},
        {"category is case-insensitive", model.Listing{Category: "  EXPERIENCE "}, model.KindExperience},
        {"whitespace-only subtype is absent", model.Listing{ActivityType: "   "}, model.KindHome},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := Classify(tc.listing); got != tc.want {
                t.Fatalf("Classify() = %q, want %q", got, tc.want)
            }
        })
    }
}

// Every listing must land in exactly one bucket, never zero.  Walk a
// grid of legacy field combinations and check the result is always one
// of the three known kinds.
func TestClassifyTotal(t *testing.T) {
    categories := []string{"", "resort", "hotel", "transient", "place", "experience", "service", "junk"}
    subtypes := []string{"", "x"}
    known := map[model.Kind]bool{model.KindHome: true, model.KindExperience: true, model.KindService: true}
    for _, cat := range categories {
        for _, pt := range subtypes {
            for _, at := range subtypes {
                for _, st := range subtypes {
                    l := model.Listing{Category: cat, PlaceType: pt, ActivityType: at, ServiceType: st}
                    if got := Classify(l); !known[got] {
                        t.Fatalf("Classify(%+v) returned unknown kind %q", l, got)
                    }
                }
            }
        }
    }
}

func TestTagPopulatesKind(t *testing.T) {
    l := Tag(model.Listing{ActivityType: "surfing"})
    if l.Kind != model.KindExperience {
        t.Fatalf("Tag left Kind = %q, want %q", l.Kind, model.KindExperience)
    }
}
