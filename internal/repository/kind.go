package repository

import (
	"time"

	"github.com/alexivanou/cityportal-api/internal/model"
)

// Kind describes one base-table/translation-table pair. The generic
// repository builds every query from it.
type Kind struct {
	Name             string // plural, used in errors and cache namespaces
	Label            string // singular, used in not-found messages
	Table            string
	TranslationTable string
	ForeignKey       string

	// Columns are the writable base columns; id, created_at and updated_at
	// are managed by the repository.
	Columns            []string
	TranslationColumns []string
	NameColumn         string
	SearchColumns      []string

	// VisibleStatus is what anonymous readers see; DraftStatus is the
	// default on create. Both are empty for kinds without a status column.
	VisibleStatus string
	DraftStatus   string

	// Order is the default ORDER BY; b is the base table, t the translation.
	Order          string
	CategoryColumn string
	HasSlug        bool
	HasMeta        bool

	// Visibility adds predicates to default-visibility reads.
	Visibility func(now time.Time) (string, []any)
	// SearchScope adds predicates to search only.
	SearchScope func(now time.Time) (string, []any)
}

const byName = "t.name IS NULL, t.name ASC, b.id ASC"

var (
	PageKind = Kind{
		Name:               "pages",
		Label:              "page",
		Table:              "pages",
		TranslationTable:   "page_translations",
		ForeignKey:         "page_id",
		Columns:            []string{"slug", "template", "parent_id", "sort_order", "status", "featured_image", "created_by"},
		TranslationColumns: []string{"title", "description", "content", "meta_title", "meta_description"},
		NameColumn:         "title",
		SearchColumns:      []string{"title", "description", "content"},
		VisibleStatus:      model.StatusPublished,
		DraftStatus:        model.StatusDraft,
		Order:              "b.sort_order ASC, b.id ASC",
		HasSlug:            true,
		HasMeta:            true,
	}

	EventKind = Kind{
		Name:             "events",
		Label:            "event",
		Table:            "events",
		TranslationTable: "event_translations",
		ForeignKey:       "event_id",
		Columns: []string{
			"category", "start_date", "end_date", "all_day", "recurring", "location_lat", "location_lng",
			"location_address", "featured_image", "is_featured", "status", "created_by",
		},
		TranslationColumns: []string{"title", "description", "location_name", "meta_title", "meta_description"},
		NameColumn:         "title",
		SearchColumns:      []string{"title", "description"},
		VisibleStatus:      model.StatusPublished,
		DraftStatus:        model.StatusDraft,
		Order:              "b.start_date ASC, b.id ASC",
		CategoryColumn:     "category",
		HasMeta:            true,
		SearchScope: func(now time.Time) (string, []any) {
			return "b.start_date >= ?", []any{now}
		},
	}

	NewsKind = Kind{
		Name:               "news",
		Label:              "news article",
		Table:              "news",
		TranslationTable:   "news_translations",
		ForeignKey:         "news_id",
		Columns:            []string{"slug", "category", "featured_image", "is_featured", "status", "published_at", "author_id"},
		TranslationColumns: []string{"title", "excerpt", "content", "meta_title", "meta_description"},
		NameColumn:         "title",
		SearchColumns:      []string{"title", "excerpt", "content"},
		VisibleStatus:      model.StatusPublished,
		DraftStatus:        model.StatusDraft,
		Order:              "b.published_at IS NULL, b.published_at DESC, b.id ASC",
		CategoryColumn:     "category",
		HasSlug:            true,
		HasMeta:            true,
		Visibility: func(now time.Time) (string, []any) {
			return "(b.published_at IS NULL OR b.published_at <= ?)", []any{now}
		},
	}

	BusinessKind = Kind{
		Name:             "business",
		Label:            "business",
		Table:            "businesses",
		TranslationTable: "business_translations",
		ForeignKey:       "business_id",
		Columns: []string{
			"category_id", "district", "address", "postal_code", "city", "phone", "email", "website", "lat", "lng",
			"opening_hours", "logo", "images", "is_verified", "is_premium", "status", "owner_id",
		},
		TranslationColumns: []string{"name", "description", "services"},
		NameColumn:         "name",
		SearchColumns:      []string{"name", "description", "services"},
		VisibleStatus:      model.StatusActive,
		DraftStatus:        model.StatusPending,
		Order:              byName,
	}

	CategoryKind = Kind{
		Name:               "categories",
		Label:              "category",
		Table:              "business_categories",
		TranslationTable:   "business_category_translations",
		ForeignKey:         "category_id",
		Columns:            []string{"slug", "icon", "parent_id", "sort_order"},
		TranslationColumns: []string{"name", "description"},
		NameColumn:         "name",
		SearchColumns:      []string{"name", "description"},
		Order:              "b.sort_order ASC, " + byName,
		HasSlug:            true,
	}

	DistrictKind = Kind{
		Name:               "districts",
		Label:              "district",
		Table:              "districts",
		TranslationTable:   "district_translations",
		ForeignKey:         "district_id",
		Columns:            []string{"slug", "center_lat", "center_lng", "boundaries", "featured_image"},
		TranslationColumns: []string{"name", "description"},
		NameColumn:         "name",
		SearchColumns:      []string{"name", "description"},
		Order:              byName,
		HasSlug:            true,
	}

	POIKind = Kind{
		Name:             "pois",
		Label:            "point of interest",
		Table:            "points_of_interest",
		TranslationTable: "poi_translations",
		ForeignKey:       "poi_id",
		Columns: []string{
			"category", "district_id", "lat", "lng", "featured_image", "images", "website", "phone",
			"opening_hours", "status",
		},
		TranslationColumns: []string{"name", "description", "address"},
		NameColumn:         "name",
		SearchColumns:      []string{"name", "description"},
		VisibleStatus:      model.StatusPublished,
		DraftStatus:        model.StatusDraft,
		Order:              byName,
		CategoryColumn:     "category",
	}

	AccommodationKind = Kind{
		Name:             "accommodations",
		Label:            "accommodation",
		Table:            "accommodations",
		TranslationTable: "accommodation_translations",
		ForeignKey:       "accommodation_id",
		Columns: []string{
			"type", "stars", "district_id", "address", "lat", "lng", "phone", "email", "website",
			"featured_image", "images", "price_from", "price_to", "status",
		},
		TranslationColumns: []string{"name", "description", "amenities"},
		NameColumn:         "name",
		SearchColumns:      []string{"name", "description", "amenities"},
		VisibleStatus:      model.StatusActive,
		DraftStatus:        model.StatusInactive,
		Order:              byName,
		CategoryColumn:     "type",
	}
)

func (k Kind) hasStatus() bool {
	return k.VisibleStatus != ""
}

// Kinds returns every content kind.
func Kinds() []Kind {
	return []Kind{PageKind, EventKind, NewsKind, BusinessKind, CategoryKind, DistrictKind, POIKind, AccommodationKind}
}
