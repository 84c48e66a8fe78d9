package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"go.uber.org/zap"
)

// defaultCity is used for businesses without a city.
const defaultCity = "München"

// Summary counts inserted items per kind.
type Summary map[string]int

// Loader inserts fixtures through the repositories.
type Loader struct {
	repos           *repository.Container
	defaultLanguage string
	logger          *zap.Logger
	now             func() time.Time
}

// NewLoader creates a loader. Missing slugs are derived from the
// defaultLanguage name or title.
func NewLoader(repos *repository.Container, defaultLanguage string, logger *zap.Logger) *Loader {
	return &Loader{
		repos:           repos,
		defaultLanguage: defaultLanguage,
		logger:          logger,
		now:             time.Now,
	}
}

// Load inserts f in dependency order: districts and categories first, then
// the items that reference them. It stops at the first failing item.
func (l *Loader) Load(ctx context.Context, f *Fixtures) (Summary, error) {
	summary := make(Summary)

	districts := make(map[string]int64, len(f.Districts))
	for _, d := range f.Districts {
		tr, slug, err := l.prepare(d.Translations, d.Slug, "name")
		if err != nil {
			return summary, fmt.Errorf("district %q: %w", d.Slug, err)
		}
		created, err := l.repos.Districts.Create(ctx, model.District{
			Slug:      slug,
			CenterLat: d.CenterLat,
			CenterLng: d.CenterLng,
		}, tr)
		if err != nil {
			return summary, fmt.Errorf("district %q: %w", slug, err)
		}
		districts[slug] = created.ID
		summary[repository.DistrictKind.Name]++
	}

	categories := make(map[string]int64, len(f.Categories))
	for _, c := range f.Categories {
		tr, slug, err := l.prepare(c.Translations, c.Slug, "name")
		if err != nil {
			return summary, fmt.Errorf("category %q: %w", c.Slug, err)
		}
		created, err := l.repos.Categories.Create(ctx, model.Category{
			Slug:      slug,
			Icon:      c.Icon,
			ParentID:  lookup(categories, c.Parent),
			SortOrder: c.SortOrder,
		}, tr)
		if err != nil {
			return summary, fmt.Errorf("category %q: %w", slug, err)
		}
		categories[slug] = created.ID
		summary[repository.CategoryKind.Name]++
	}

	pages := make(map[string]int64, len(f.Pages))
	for _, p := range f.Pages {
		tr, slug, err := l.prepare(p.Translations, p.Slug, "title")
		if err != nil {
			return summary, fmt.Errorf("page %q: %w", p.Slug, err)
		}
		template := p.Template
		if template == "" {
			template = "default"
		}
		created, err := l.repos.Pages.Create(ctx, model.Page{
			Slug:      slug,
			Template:  template,
			ParentID:  lookup(pages, p.Parent),
			SortOrder: p.SortOrder,
			Status:    p.Status,
		}, tr)
		if err != nil {
			return summary, fmt.Errorf("page %q: %w", slug, err)
		}
		pages[slug] = created.ID
		summary[repository.PageKind.Name]++
	}

	now := l.now().UTC()
	for i, e := range f.Events {
		tr, err := e.Translations.Translations()
		if err != nil {
			return summary, fmt.Errorf("event %d: %w", i, err)
		}
		start, end, err := e.window(now)
		if err != nil {
			return summary, fmt.Errorf("event %d: %w", i, err)
		}
		if _, err := l.repos.Events.Create(ctx, model.Event{
			Category:        e.Category,
			StartDate:       start,
			EndDate:         end,
			AllDay:          e.AllDay,
			LocationAddress: e.Address,
			LocationLat:     e.Lat,
			LocationLng:     e.Lng,
			IsFeatured:      e.Featured,
			Status:          e.Status,
		}, tr); err != nil {
			return summary, fmt.Errorf("event %d: %w", i, err)
		}
		summary[repository.EventKind.Name]++
	}

	for _, n := range f.News {
		tr, slug, err := l.prepare(n.Translations, n.Slug, "title")
		if err != nil {
			return summary, fmt.Errorf("news %q: %w", n.Slug, err)
		}
		publishedAt := n.PublishedAt
		if publishedAt == nil && n.Status == model.StatusPublished {
			publishedAt = &now
		}
		if _, err := l.repos.News.Create(ctx, model.News{
			Slug:        slug,
			Category:    n.Category,
			IsFeatured:  n.Featured,
			Status:      n.Status,
			PublishedAt: publishedAt,
		}, tr); err != nil {
			return summary, fmt.Errorf("news %q: %w", slug, err)
		}
		summary[repository.NewsKind.Name]++
	}

	for i, b := range f.Businesses {
		tr, err := b.Translations.Translations()
		if err != nil {
			return summary, fmt.Errorf("business %d: %w", i, err)
		}
		city := b.City
		if city == "" {
			city = defaultCity
		}
		if _, err := l.repos.Businesses.Create(ctx, model.Business{
			CategoryID: categories[b.Category],
			District:   b.District,
			Address:    b.Address,
			PostalCode: b.PostalCode,
			City:       city,
			Phone:      b.Phone,
			Email:      b.Email,
			Website:    b.Website,
			Lat:        b.Lat,
			Lng:        b.Lng,
			IsVerified: b.Verified,
			IsPremium:  b.Premium,
			Status:     b.Status,
		}, tr); err != nil {
			return summary, fmt.Errorf("business %d: %w", i, err)
		}
		summary[repository.BusinessKind.Name]++
	}

	for i, p := range f.POIs {
		tr, err := p.Translations.Translations()
		if err != nil {
			return summary, fmt.Errorf("poi %d: %w", i, err)
		}
		if _, err := l.repos.POIs.Create(ctx, model.POI{
			Category:   p.Category,
			DistrictID: lookup(districts, p.District),
			Lat:        p.Lat,
			Lng:        p.Lng,
			Website:    p.Website,
			Phone:      p.Phone,
			Status:     p.Status,
		}, tr); err != nil {
			return summary, fmt.Errorf("poi %d: %w", i, err)
		}
		summary[repository.POIKind.Name]++
	}

	for i, a := range f.Accommodations {
		tr, err := a.Translations.Translations()
		if err != nil {
			return summary, fmt.Errorf("accommodation %d: %w", i, err)
		}
		if _, err := l.repos.Accommodations.Create(ctx, model.Accommodation{
			Type:       a.Type,
			Stars:      a.Stars,
			DistrictID: lookup(districts, a.District),
			Address:    a.Address,
			Lat:        a.Lat,
			Lng:        a.Lng,
			Phone:      a.Phone,
			Email:      a.Email,
			Website:    a.Website,
			PriceFrom:  a.PriceFrom,
			PriceTo:    a.PriceTo,
			Status:     a.Status,
		}, tr); err != nil {
			return summary, fmt.Errorf("accommodation %d: %w", i, err)
		}
		summary[repository.AccommodationKind.Name]++
	}

	for kind, n := range summary {
		l.logger.Info("Seeded fixtures", zap.String("kind", kind), zap.Int("count", n))
	}
	return summary, nil
}

// prepare converts texts and derives a slug from the default-language
// column when slug is empty.
func (l *Loader) prepare(texts Texts, slug, column string) (model.Translations, string, error) {
	tr, err := texts.Translations()
	if err != nil {
		return nil, "", err
	}
	if slug != "" {
		return tr, slug, nil
	}
	if def, ok := tr[l.defaultLanguage]; ok {
		if v := def.Get(column); v != nil {
			slug = i18n.Slugify(*v)
		}
	}
	if slug == "" {
		return nil, "", fmt.Errorf("slug is required without a %s %s", l.defaultLanguage, column)
	}
	return tr, slug, nil
}

func (e EventFixture) window(now time.Time) (time.Time, *time.Time, error) {
	start := now
	if e.Start != nil {
		start = e.Start.UTC()
	} else {
		offset, err := time.ParseDuration(e.StartsIn)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid startsIn: %w", err)
		}
		start = now.Add(offset).Truncate(time.Minute)
	}

	end := e.End
	if end == nil && e.Duration != "" {
		d, err := time.ParseDuration(e.Duration)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid duration: %w", err)
		}
		t := start.Add(d)
		end = &t
	}
	if end != nil && end.Before(start) {
		return time.Time{}, nil, fmt.Errorf("end before start")
	}
	return start, end, nil
}

func lookup(ids map[string]int64, slug string) *int64 {
	if slug == "" {
		return nil
	}
	if id, ok := ids[slug]; ok {
		return &id
	}
	return nil
}
