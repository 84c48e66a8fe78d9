package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/database"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbCounter atomic.Int64

var testLanguages = []string{"de", "en", "fr"}

func setupDB(t *testing.T) *sqlx.DB {
	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: fmt.Sprintf("repo_test_%d", dbCounter.Add(1)),
	}
	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, cfg, "../../migrations"))
	t.Cleanup(func() { db.Close() })
	return db
}

func setupRepo(t *testing.T, policy config.MissingTranslationPolicy) *Container {
	db := setupDB(t)
	return NewRepositories(db, Options{Languages: testLanguages, MissingTranslations: policy})
}

func publishedPage(slug string, sort int) model.Page {
	return model.Page{Slug: slug, Template: "default", SortOrder: sort, Status: model.StatusPublished}
}

func TestTranslatedRepository_CreateAndFind(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	created, err := repos.Pages.Create(ctx, model.Page{Slug: "about", Template: "default"}, model.Translations{
		"de": {Title: model.String("Über uns"), Description: model.String("Wer wir sind"), Content: model.String("<p>Hallo</p><script>alert(1)</script>")},
		"en": {Title: model.String("About"), Description: model.String("Who we are")},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.StatusDraft, created.Status, "status defaults to draft")
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("merged record in supplied language", func(t *testing.T) {
		got, err := repos.Pages.FindByID(ctx, created.ID, "en")
		require.NoError(t, err)
		require.False(t, got.Missing())
		assert.Equal(t, "About", *got.Translation.Title)
		assert.Equal(t, "Who we are", *got.Translation.Description)
		assert.Equal(t, "about", got.Entity.Slug)
	})

	t.Run("meta fields derived and content sanitized", func(t *testing.T) {
		got, err := repos.Pages.FindByID(ctx, created.ID, "de")
		require.NoError(t, err)
		assert.Equal(t, "Über uns", *got.Translation.MetaTitle)
		assert.Equal(t, "Wer wir sind", *got.Translation.MetaDescription)
		assert.Equal(t, "<p>Hallo</p>", *got.Translation.Content)
	})

	t.Run("language not supplied returns base row with null fields", func(t *testing.T) {
		got, err := repos.Pages.FindByID(ctx, created.ID, "fr")
		require.NoError(t, err)
		assert.True(t, got.Missing())
		assert.Equal(t, created.ID, got.Entity.ID)
		v := got.View()
		assert.Nil(t, v["title"])
		assert.Nil(t, v["description"])
	})

	t.Run("find by slug", func(t *testing.T) {
		got, err := repos.Pages.FindBySlug(ctx, "about", "en")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.Entity.ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repos.Pages.FindByID(ctx, 9999, "en")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestTranslatedRepository_CreateValidation(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	tests := []struct {
		name         string
		create       func() error
		expectedCode error
	}{
		{
			name: "no translations",
			create: func() error {
				_, err := repos.Pages.Create(ctx, model.Page{Slug: "x"}, nil)
				return err
			},
			expectedCode: apperror.ErrValidation,
		},
		{
			name: "empty title",
			create: func() error {
				_, err := repos.Pages.Create(ctx, model.Page{Slug: "x"}, model.Translations{"de": {Title: model.String("  ")}})
				return err
			},
			expectedCode: apperror.ErrValidation,
		},
		{
			name: "unsupported language",
			create: func() error {
				_, err := repos.Pages.Create(ctx, model.Page{Slug: "x"}, model.Translations{"xx": {Title: model.String("X")}})
				return err
			},
			expectedCode: apperror.ErrValidation,
		},
		{
			name: "event without start date",
			create: func() error {
				_, err := repos.Events.Create(ctx, model.Event{}, model.Translations{"de": {Title: model.String("Fest")}})
				return err
			},
			expectedCode: apperror.ErrValidation,
		},
		{
			name: "business without address",
			create: func() error {
				_, err := repos.Businesses.Create(ctx, model.Business{CategoryID: 1, PostalCode: "80331"}, model.Translations{"de": {Name: model.String("Bäckerei")}})
				return err
			},
			expectedCode: apperror.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.create()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedCode), "got %v", err)
		})
	}

	var count int
	// Validation happens before any write
	db := repos.Pages.(*TranslatedRepository[model.Page]).db
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM pages"))
	assert.Equal(t, 0, count)
}

func TestTranslatedRepository_DuplicateSlugIsConflict(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	tr := model.Translations{"de": {Title: model.String("Kontakt")}}
	_, err := repos.Pages.Create(ctx, model.Page{Slug: "contact"}, tr)
	require.NoError(t, err)

	_, err = repos.Pages.Create(ctx, model.Page{Slug: "contact"}, tr)
	assert.True(t, errors.Is(err, apperror.ErrConflict), "got %v", err)

	var count int
	db := repos.Pages.(*TranslatedRepository[model.Page]).db
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM page_translations"))
	assert.Equal(t, 1, count, "failed create must not leave translations behind")
}

func TestTranslatedRepository_Update(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	created, err := repos.Pages.Create(ctx, model.Page{Slug: "team"}, model.Translations{
		"de": {Title: model.String("Team"), Description: model.String("Unser Team")},
	})
	require.NoError(t, err)

	t.Run("partial attribute patch", func(t *testing.T) {
		updated, err := repos.Pages.Update(ctx, created.ID, model.PagePatch{SortOrder: intPtr(5)}, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.SortOrder)
		assert.Equal(t, "team", updated.Slug, "unpatched fields are kept")
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("existing translation updates only supplied fields", func(t *testing.T) {
		_, err := repos.Pages.Update(ctx, created.ID, nil, model.Translations{"de": {Title: model.String("Das Team")}})
		require.NoError(t, err)

		got, err := repos.Pages.FindByID(ctx, created.ID, "de")
		require.NoError(t, err)
		assert.Equal(t, "Das Team", *got.Translation.Title)
		assert.Equal(t, "Unser Team", *got.Translation.Description)
	})

	t.Run("missing translation is inserted", func(t *testing.T) {
		_, err := repos.Pages.Update(ctx, created.ID, nil, model.Translations{"en": {Title: model.String("The team")}})
		require.NoError(t, err)

		got, err := repos.Pages.FindByID(ctx, created.ID, "en")
		require.NoError(t, err)
		require.False(t, got.Missing())
		assert.Equal(t, "The team", *got.Translation.Title)
		assert.Equal(t, "The team", *got.Translation.MetaTitle)
	})

	t.Run("inserting without title fails", func(t *testing.T) {
		_, err := repos.Pages.Update(ctx, created.ID, nil, model.Translations{"fr": {Description: model.String("Équipe")}})
		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := repos.Pages.Update(ctx, created.ID, &model.PagePatch{Status: model.String("deleted")}, nil)
		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Pages.Update(ctx, 4242, model.PagePatch{SortOrder: intPtr(1)}, nil)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestTranslatedRepository_Delete(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()
	db := repos.Pages.(*TranslatedRepository[model.Page]).db

	created, err := repos.Pages.Create(ctx, model.Page{Slug: "gone"}, model.Translations{
		"de": {Title: model.String("Weg")},
		"en": {Title: model.String("Gone")},
	})
	require.NoError(t, err)

	require.NoError(t, repos.Pages.Delete(ctx, created.ID))

	for _, lang := range testLanguages {
		_, err := repos.Pages.FindByID(ctx, created.ID, lang)
		assert.True(t, errors.Is(err, apperror.ErrNotFound), lang)
	}

	var orphans int
	require.NoError(t, db.Get(&orphans, "SELECT COUNT(*) FROM page_translations WHERE page_id = ?", created.ID))
	assert.Equal(t, 0, orphans)

	err = repos.Pages.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestTranslatedRepository_ListPagination(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		_, err := repos.Pages.Create(ctx, publishedPage(fmt.Sprintf("p-%02d", i), i), model.Translations{
			"de": {Title: model.String(fmt.Sprintf("Seite %d", i))},
		})
		require.NoError(t, err)
	}
	// Drafts are hidden by default
	_, err := repos.Pages.Create(ctx, model.Page{Slug: "draft", SortOrder: 0}, model.Translations{"de": {Title: model.String("Entwurf")}})
	require.NoError(t, err)

	t.Run("page two holds items 11 to 20", func(t *testing.T) {
		items, err := repos.Pages.List(ctx, NoFilter{}, ListOptions{Page: 2, PageSize: 10, Language: "de"})
		require.NoError(t, err)
		require.Len(t, items, 10)
		assert.Equal(t, 11, items[0].Entity.SortOrder)
		assert.Equal(t, 20, items[9].Entity.SortOrder)
	})

	t.Run("page beyond the end is empty", func(t *testing.T) {
		items, err := repos.Pages.List(ctx, NoFilter{}, ListOptions{Page: 9, PageSize: 10, Language: "de"})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("privileged status override", func(t *testing.T) {
		items, err := repos.Pages.List(ctx, NoFilter{}, ListOptions{Page: 1, PageSize: 100, Language: "de", Status: model.StatusAny})
		require.NoError(t, err)
		assert.Len(t, items, 26)

		drafts, err := repos.Pages.List(ctx, NoFilter{}, ListOptions{Language: "de", Status: model.StatusDraft})
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, "draft", drafts[0].Entity.Slug)
	})

	t.Run("page size is clamped", func(t *testing.T) {
		opts := ListOptions{Page: -3, PageSize: 1000}.Normalize()
		assert.Equal(t, 1, opts.Page)
		assert.Equal(t, 100, opts.PageSize)
		assert.Equal(t, 20, ListOptions{}.Normalize().PageSize)
	})
}

func TestTranslatedRepository_MissingTranslationPolicy(t *testing.T) {
	for _, tc := range []struct {
		policy   config.MissingTranslationPolicy
		expected int
	}{
		{config.MissingInclude, 2},
		{config.MissingHide, 1},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			repos := setupRepo(t, tc.policy)
			ctx := context.Background()

			_, err := repos.Pages.Create(ctx, publishedPage("both", 1), model.Translations{
				"de": {Title: model.String("Beide")}, "en": {Title: model.String("Both")},
			})
			require.NoError(t, err)
			_, err = repos.Pages.Create(ctx, publishedPage("german", 2), model.Translations{
				"de": {Title: model.String("Nur Deutsch")},
			})
			require.NoError(t, err)

			items, err := repos.Pages.List(ctx, NoFilter{}, ListOptions{Language: "en"})
			require.NoError(t, err)
			require.Len(t, items, tc.expected)
			assert.Equal(t, "Both", items[0].Text("title"))
			if tc.policy == config.MissingInclude {
				assert.True(t, items[1].Missing())
				assert.Equal(t, "", items[1].Text("title"))
			}
		})
	}
}

func TestTranslatedRepository_Filters(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	day := time.Now().UTC().Add(48 * time.Hour).Truncate(24 * time.Hour)
	concert, music := "concert", "music"
	for i, e := range []model.Event{
		{Category: &concert, StartDate: day.Add(10 * time.Hour), Status: model.StatusPublished},
		{Category: &music, StartDate: day.Add(20 * time.Hour), Status: model.StatusPublished, IsFeatured: true},
		{Category: &concert, StartDate: day.Add(30 * time.Hour), Status: model.StatusPublished},
	} {
		_, err := repos.Events.Create(ctx, e, model.Translations{"de": {Title: model.String(fmt.Sprintf("Event %d", i))}})
		require.NoError(t, err)
	}

	t.Run("category", func(t *testing.T) {
		items, err := repos.Events.List(ctx, EventFilter{Category: &concert}, ListOptions{Language: "de"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("date window ordered by start date", func(t *testing.T) {
		to := day.Add(24 * time.Hour)
		items, err := repos.Events.List(ctx, EventFilter{From: &day, To: &to}, ListOptions{Language: "de"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].Entity.StartDate.Before(items[1].Entity.StartDate))
	})

	t.Run("featured", func(t *testing.T) {
		yes := true
		items, err := repos.Events.List(ctx, EventFilter{Featured: &yes}, ListOptions{Language: "de"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "music", *items[0].Entity.Category)
	})

	t.Run("distinct categories", func(t *testing.T) {
		cats, err := repos.Events.DistinctCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"concert", "music"}, cats)
	})

	t.Run("kind without category column", func(t *testing.T) {
		_, err := repos.Pages.DistinctCategories(ctx)
		assert.Error(t, err)
	})
}

func TestTranslatedRepository_Search(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := repos.News.Create(ctx, model.News{Slug: fmt.Sprintf("n-%d", i), Status: model.StatusPublished}, model.Translations{
			"en": {Title: model.String(fmt.Sprintf("City Marathon %d", i)), Excerpt: model.String("Runners everywhere")},
		})
		require.NoError(t, err)
	}
	_, err := repos.News.Create(ctx, model.News{Slug: "other", Status: model.StatusPublished}, model.Translations{
		"en": {Title: model.String("100% match_test")},
	})
	require.NoError(t, err)

	t.Run("limit caps results", func(t *testing.T) {
		items, err := repos.News.Search(ctx, "marathon", "en", 5, 0)
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("secondary columns match case-insensitively", func(t *testing.T) {
		items, err := repos.News.Search(ctx, "RUNNERS", "en", 20, 0)
		require.NoError(t, err)
		assert.Len(t, items, 7)
	})

	t.Run("other language has no match", func(t *testing.T) {
		items, err := repos.News.Search(ctx, "marathon", "de", 20, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		items, err := repos.News.Search(ctx, "0% m", "en", 20, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "other", items[0].Entity.Slug)

		items, err = repos.News.Search(ctx, "_", "en", 20, 0)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("past events are excluded", func(t *testing.T) {
		_, err := repos.Events.Create(ctx, model.Event{StartDate: time.Now().UTC().Add(-48 * time.Hour), Status: model.StatusPublished},
			model.Translations{"en": {Title: model.String("Old marathon")}})
		require.NoError(t, err)
		_, err = repos.Events.Create(ctx, model.Event{StartDate: time.Now().UTC().Add(48 * time.Hour), Status: model.StatusPublished},
			model.Translations{"en": {Title: model.String("Next marathon")}})
		require.NoError(t, err)

		items, err := repos.Events.Search(ctx, "marathon", "en", 5, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Next marathon", items[0].Text("title"))
	})

	t.Run("non-ASCII letters match case-insensitively", func(t *testing.T) {
		_, err := repos.News.Create(ctx, model.News{Slug: "muenchen", Status: model.StatusPublished}, model.Translations{
			"de": {Title: model.String("MÜNCHEN LEUCHTET")},
		})
		require.NoError(t, err)

		items, err := repos.News.Search(ctx, "mün", "de", 20, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "muenchen", items[0].Entity.Slug)

		names, err := repos.News.Suggest(ctx, "münchen", "de", 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"MÜNCHEN LEUCHTET"}, names)
	})
}

func TestTranslatedRepository_TimesStoredAsUTC(t *testing.T) {
	db := setupDB(t)
	repos := NewRepositories(db, Options{Languages: testLanguages, MissingTranslations: config.MissingInclude})
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	east := time.FixedZone("UTC+5", 5*3600)
	west := time.FixedZone("UTC-5", -5*3600)

	past, err := repos.Events.Create(ctx, model.Event{StartDate: now.Add(-time.Hour).In(east), Status: model.StatusPublished},
		model.Translations{"en": {Title: model.String("Earlier parade")}})
	require.NoError(t, err)
	future, err := repos.Events.Create(ctx, model.Event{StartDate: now.Add(time.Hour).In(west), Status: model.StatusPublished},
		model.Translations{"en": {Title: model.String("Later parade")}})
	require.NoError(t, err)

	t.Run("stored value is the UTC instant", func(t *testing.T) {
		for id, want := range map[int64]time.Time{past.ID: now.Add(-time.Hour), future.ID: now.Add(time.Hour)} {
			var raw string
			require.NoError(t, db.GetContext(ctx, &raw, "SELECT CAST(start_date AS TEXT) FROM events WHERE id = ?", id))
			assert.True(t, strings.HasPrefix(raw, want.Format("2006-01-02 15:04:05")), "stored %q", raw)

			got, err := repos.Events.FindByID(ctx, id, "en")
			require.NoError(t, err)
			assert.True(t, want.Equal(got.Entity.StartDate))
		}
	})

	t.Run("search keeps only the upcoming event", func(t *testing.T) {
		items, err := repos.Events.Search(ctx, "parade", "en", 10, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, future.ID, items[0].Entity.ID)
	})

	t.Run("date filter compares instants", func(t *testing.T) {
		from := now.In(east)
		items, err := repos.Events.List(ctx, EventFilter{From: &from}, ListOptions{Language: "en"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, future.ID, items[0].Entity.ID)
	})

	t.Run("patched time is normalized", func(t *testing.T) {
		moved := now.Add(-2 * time.Hour).In(west)
		_, err := repos.Events.Update(ctx, future.ID, model.EventPatch{StartDate: &moved}, nil)
		require.NoError(t, err)

		from := now
		items, err := repos.Events.List(ctx, EventFilter{From: &from}, ListOptions{Language: "en"})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestTranslatedRepository_Suggest(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	for i, title := range []string{"Marienplatz", "Maximilianstraße", "Olympiapark"} {
		_, err := repos.Pages.Create(ctx, publishedPage(fmt.Sprintf("s-%d", i), i), model.Translations{"de": {Title: model.String(title)}})
		require.NoError(t, err)
	}

	names, err := repos.Pages.Suggest(ctx, "ma", "de", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Marienplatz", "Maximilianstraße"}, names)
}

func TestTranslatedRepository_BusinessAndLocations(t *testing.T) {
	repos := setupRepo(t, config.MissingInclude)
	ctx := context.Background()

	cat, err := repos.Categories.Create(ctx, model.Category{Slug: "food"}, model.Translations{"de": {Name: model.String("Essen")}})
	require.NoError(t, err)

	biz, err := repos.Businesses.Create(ctx, model.Business{
		CategoryID: cat.ID, Address: "Marienplatz 1", PostalCode: "80331", City: "München",
		OpeningHours: model.JSONText(`{"mon":"8-18"}`),
	}, model.Translations{"de": {Name: model.String("Bäckerei"), Services: model.String("Brot")}})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, biz.Status)
	assert.JSONEq(t, `{"mon":"8-18"}`, string(biz.OpeningHours))

	t.Run("category in use cannot be deleted", func(t *testing.T) {
		err := repos.Categories.Delete(ctx, cat.ID)
		assert.Error(t, err)
	})

	t.Run("pending business is hidden", func(t *testing.T) {
		items, err := repos.Businesses.List(ctx, BusinessFilter{CategoryID: &cat.ID}, ListOptions{Language: "de"})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("verify via patch", func(t *testing.T) {
		yes, active := true, model.StatusActive
		updated, err := repos.Businesses.Update(ctx, biz.ID, model.BusinessPatch{IsVerified: &yes, Status: &active}, nil)
		require.NoError(t, err)
		assert.True(t, updated.IsVerified)

		items, err := repos.Businesses.List(ctx, BusinessFilter{Verified: &yes}, ListOptions{Language: "de"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Bäckerei", items[0].Text("name"))
	})

	t.Run("accommodation types", func(t *testing.T) {
		for _, typ := range []string{"hotel", "hostel", "hotel"} {
			_, err := repos.Accommodations.Create(ctx, model.Accommodation{Type: typ}, model.Translations{"en": {Name: model.String(typ)}})
			require.NoError(t, err)
		}
		types, err := repos.Accommodations.DistinctCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"hostel", "hotel"}, types)
	})

	t.Run("districts ordered by name", func(t *testing.T) {
		for _, d := range []struct{ slug, name string }{{"schwabing", "Schwabing"}, {"au", "Au"}} {
			_, err := repos.Districts.Create(ctx, model.District{Slug: d.slug}, model.Translations{"de": {Name: model.String(d.name)}})
			require.NoError(t, err)
		}
		items, err := repos.Districts.All(ctx, NoFilter{}, "de")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Au", items[0].Text("name"))

		d, err := repos.Districts.FindBySlug(ctx, "schwabing", "de")
		require.NoError(t, err)
		assert.Equal(t, "Schwabing", d.Text("name"))
	})
}

func TestIsDatabaseEmpty(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	empty, err := IsDatabaseEmpty(ctx, db)
	require.NoError(t, err)
	assert.True(t, empty)

	repos := NewRepositories(db, Options{Languages: testLanguages})
	_, err = repos.Districts.Create(ctx, model.District{Slug: "au"}, model.Translations{"de": {Name: model.String("Au")}})
	require.NoError(t, err)

	empty, err = IsDatabaseEmpty(ctx, db)
	require.NoError(t, err)
	assert.False(t, empty)
}

func intPtr(i int) *int {
	return &i
}
