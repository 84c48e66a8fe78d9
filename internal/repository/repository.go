package repository

import (
	"context"

	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/jmoiron/sqlx"
)

type (
	PageRepository          = ContentRepository[model.Page]
	EventRepository         = ContentRepository[model.Event]
	NewsRepository          = ContentRepository[model.News]
	BusinessRepository      = ContentRepository[model.Business]
	CategoryRepository      = ContentRepository[model.Category]
	DistrictRepository      = ContentRepository[model.District]
	POIRepository           = ContentRepository[model.POI]
	AccommodationRepository = ContentRepository[model.Accommodation]
)

// Container holds all repositories
type Container struct {
	Pages          PageRepository
	Events         EventRepository
	News           NewsRepository
	Businesses     BusinessRepository
	Categories     CategoryRepository
	Districts      DistrictRepository
	POIs           POIRepository
	Accommodations AccommodationRepository
}

// NewRepositories creates one translated repository per kind. Queries are
// written with ? placeholders and rebound for the connected driver.
func NewRepositories(db *sqlx.DB, opts Options) *Container {
	return &Container{
		Pages:          NewTranslatedRepository[model.Page](db, PageKind, opts),
		Events:         NewTranslatedRepository[model.Event](db, EventKind, opts),
		News:           NewTranslatedRepository[model.News](db, NewsKind, opts),
		Businesses:     NewTranslatedRepository[model.Business](db, BusinessKind, opts),
		Categories:     NewTranslatedRepository[model.Category](db, CategoryKind, opts),
		Districts:      NewTranslatedRepository[model.District](db, DistrictKind, opts),
		POIs:           NewTranslatedRepository[model.POI](db, POIKind, opts),
		Accommodations: NewTranslatedRepository[model.Accommodation](db, AccommodationKind, opts),
	}
}

// IsDatabaseEmpty reports whether no content has been stored yet.
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	query := `SELECT (SELECT COUNT(*) FROM pages) + (SELECT COUNT(*) FROM districts) + (SELECT COUNT(*) FROM business_categories)`
	err := db.GetContext(ctx, &count, query)
	if err != nil {
		// Simplify error handling for non-existent tables
		return true, nil
	}
	return count == 0, nil
}
