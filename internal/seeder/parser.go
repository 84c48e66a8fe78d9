package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexivanou/cityportal-api/internal/model"
	"gopkg.in/yaml.v3"
)

// Texts maps language code to translation column to value, e.g.
// {"de": {"title": "Über uns", "meta_title": "..."}}.
type Texts map[string]map[string]string

// Fixtures is the content of a fixture file. Items reference each other by
// slug; the loader resolves slugs to ids in dependency order.
type Fixtures struct {
	Districts      []DistrictFixture      `yaml:"districts"`
	Categories     []CategoryFixture      `yaml:"categories"`
	Pages          []PageFixture          `yaml:"pages"`
	Events         []EventFixture         `yaml:"events"`
	News           []NewsFixture          `yaml:"news"`
	Businesses     []BusinessFixture      `yaml:"businesses"`
	POIs           []POIFixture           `yaml:"pois"`
	Accommodations []AccommodationFixture `yaml:"accommodations"`
}

// DistrictFixture describes a district.
type DistrictFixture struct {
	Slug         string   `yaml:"slug"`
	CenterLat    *float64 `yaml:"centerLat"`
	CenterLng    *float64 `yaml:"centerLng"`
	Translations Texts    `yaml:"translations"`
}

// CategoryFixture describes a business category. Parent is a category slug
// listed earlier in the file.
type CategoryFixture struct {
	Slug         string  `yaml:"slug"`
	Parent       string  `yaml:"parent"`
	Icon         *string `yaml:"icon"`
	SortOrder    int     `yaml:"sortOrder"`
	Translations Texts   `yaml:"translations"`
}

// PageFixture describes a page. Parent is a page slug listed earlier.
type PageFixture struct {
	Slug         string `yaml:"slug"`
	Parent       string `yaml:"parent"`
	Template     string `yaml:"template"`
	SortOrder    int    `yaml:"sortOrder"`
	Status       string `yaml:"status"`
	Translations Texts  `yaml:"translations"`
}

// EventFixture describes an event. Either Start or StartsIn must be set;
// StartsIn and Duration are Go durations relative to the load time, so
// demo data stays upcoming.
type EventFixture struct {
	Category     *string    `yaml:"category"`
	Start        *time.Time `yaml:"start"`
	End          *time.Time `yaml:"end"`
	StartsIn     string     `yaml:"startsIn"`
	Duration     string     `yaml:"duration"`
	AllDay       bool       `yaml:"allDay"`
	Address      *string    `yaml:"address"`
	Lat          *float64   `yaml:"lat"`
	Lng          *float64   `yaml:"lng"`
	Featured     bool       `yaml:"featured"`
	Status       string     `yaml:"status"`
	Translations Texts      `yaml:"translations"`
}

// NewsFixture describes a news article.
type NewsFixture struct {
	Slug         string     `yaml:"slug"`
	Category     *string    `yaml:"category"`
	Featured     bool       `yaml:"featured"`
	Status       string     `yaml:"status"`
	PublishedAt  *time.Time `yaml:"publishedAt"`
	Translations Texts      `yaml:"translations"`
}

// BusinessFixture describes a business listing. Category is a category slug.
type BusinessFixture struct {
	Category     string   `yaml:"category"`
	District     *string  `yaml:"district"`
	Address      string   `yaml:"address"`
	PostalCode   string   `yaml:"postalCode"`
	City         string   `yaml:"city"`
	Phone        *string  `yaml:"phone"`
	Email        *string  `yaml:"email"`
	Website      *string  `yaml:"website"`
	Lat          *float64 `yaml:"lat"`
	Lng          *float64 `yaml:"lng"`
	Verified     bool     `yaml:"verified"`
	Premium      bool     `yaml:"premium"`
	Status       string   `yaml:"status"`
	Translations Texts    `yaml:"translations"`
}

// POIFixture describes a point of interest. District is a district slug.
type POIFixture struct {
	Category     *string  `yaml:"category"`
	District     string   `yaml:"district"`
	Lat          *float64 `yaml:"lat"`
	Lng          *float64 `yaml:"lng"`
	Website      *string  `yaml:"website"`
	Phone        *string  `yaml:"phone"`
	Status       string   `yaml:"status"`
	Translations Texts    `yaml:"translations"`
}

// AccommodationFixture describes a place to stay. District is a district slug.
type AccommodationFixture struct {
	Type         string   `yaml:"type"`
	Stars        *int     `yaml:"stars"`
	District     string   `yaml:"district"`
	Address      *string  `yaml:"address"`
	Lat          *float64 `yaml:"lat"`
	Lng          *float64 `yaml:"lng"`
	Phone        *string  `yaml:"phone"`
	Email        *string  `yaml:"email"`
	Website      *string  `yaml:"website"`
	PriceFrom    *float64 `yaml:"priceFrom"`
	PriceTo      *float64 `yaml:"priceTo"`
	Status       string   `yaml:"status"`
	Translations Texts    `yaml:"translations"`
}

// Count returns the number of items in f.
func (f *Fixtures) Count() int {
	return len(f.Districts) + len(f.Categories) + len(f.Pages) + len(f.Events) +
		len(f.News) + len(f.Businesses) + len(f.POIs) + len(f.Accommodations)
}

// Parser reads fixture files
type Parser struct {
	allowedLanguages map[string]bool
}

// NewParser creates a parser that keeps only translations in languages.
func NewParser(languages []string) *Parser {
	allowed := make(map[string]bool, len(languages))
	for _, lang := range languages {
		allowed[lang] = true
	}
	return &Parser{allowedLanguages: allowed}
}

// ParseFile parses the fixture file at path.
func (p *Parser) ParseFile(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse decodes fixtures from r. Unknown keys are rejected; translations in
// languages outside the configured set are dropped.
func (p *Parser) Parse(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for i := range f.Districts {
		f.Districts[i].Translations = p.filter(f.Districts[i].Translations)
	}
	for i := range f.Categories {
		f.Categories[i].Translations = p.filter(f.Categories[i].Translations)
	}
	for i := range f.Pages {
		f.Pages[i].Translations = p.filter(f.Pages[i].Translations)
	}
	for i := range f.Events {
		f.Events[i].Translations = p.filter(f.Events[i].Translations)
	}
	for i := range f.News {
		f.News[i].Translations = p.filter(f.News[i].Translations)
	}
	for i := range f.Businesses {
		f.Businesses[i].Translations = p.filter(f.Businesses[i].Translations)
	}
	for i := range f.POIs {
		f.POIs[i].Translations = p.filter(f.POIs[i].Translations)
	}
	for i := range f.Accommodations {
		f.Accommodations[i].Translations = p.filter(f.Accommodations[i].Translations)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (p *Parser) filter(texts Texts) Texts {
	if len(p.allowedLanguages) == 0 {
		return texts
	}
	out := make(Texts, len(texts))
	for lang, fields := range texts {
		if p.allowedLanguages[lang] {
			out[lang] = fields
		}
	}
	return out
}

// validate checks slug uniqueness and that every parent precedes its child.
func (f *Fixtures) validate() error {
	if err := uniqueSlugs("district", len(f.Districts), func(i int) string { return f.Districts[i].Slug }); err != nil {
		return err
	}
	if err := uniqueSlugs("news", len(f.News), func(i int) string { return f.News[i].Slug }); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i, c := range f.Categories {
		if c.Slug == "" {
			return fmt.Errorf("category %d: slug is required", i)
		}
		if seen[c.Slug] {
			return fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		if c.Parent != "" && !seen[c.Parent] {
			return fmt.Errorf("category %q: parent %q must be listed before it", c.Slug, c.Parent)
		}
		seen[c.Slug] = true
	}
	for i, b := range f.Businesses {
		if !seen[b.Category] {
			return fmt.Errorf("business %d: unknown category %q", i, b.Category)
		}
	}

	pages := make(map[string]bool)
	for i, pg := range f.Pages {
		if pg.Slug == "" {
			return fmt.Errorf("page %d: slug is required", i)
		}
		if pages[pg.Slug] {
			return fmt.Errorf("duplicate page slug %q", pg.Slug)
		}
		if pg.Parent != "" && !pages[pg.Parent] {
			return fmt.Errorf("page %q: parent %q must be listed before it", pg.Slug, pg.Parent)
		}
		pages[pg.Slug] = true
	}

	for i, e := range f.Events {
		if e.Start == nil && e.StartsIn == "" {
			return fmt.Errorf("event %d: start or startsIn is required", i)
		}
	}

	districts := make(map[string]bool, len(f.Districts))
	for _, d := range f.Districts {
		districts[d.Slug] = true
	}
	for i, poi := range f.POIs {
		if poi.District != "" && !districts[poi.District] {
			return fmt.Errorf("poi %d: unknown district %q", i, poi.District)
		}
	}
	for i, a := range f.Accommodations {
		if a.District != "" && !districts[a.District] {
			return fmt.Errorf("accommodation %d: unknown district %q", i, a.District)
		}
	}
	return nil
}

func uniqueSlugs(kind string, n int, slug func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		s := slug(i)
		if s == "" {
			continue
		}
		if seen[s] {
			return fmt.Errorf("duplicate %s slug %q", kind, s)
		}
		seen[s] = true
	}
	return nil
}

// Translations converts texts into model translations. Unknown columns are
// an error.
func (t Texts) Translations() (model.Translations, error) {
	out := make(model.Translations, len(t))
	for lang, fields := range t {
		tr := model.Translation{Language: lang}
		for column, value := range fields {
			f := tr.Field(column)
			if f == nil {
				return nil, fmt.Errorf("unknown translation field %q", column)
			}
			*f = model.String(value)
		}
		out[lang] = tr
	}
	return out, nil
}
