package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/auth"
	"github.com/alexivanou/cityportal-api/internal/cache"
	"github.com/alexivanou/cityportal-api/internal/hierarchy"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/alexivanou/cityportal-api/internal/search"
)

// content wraps one repository with the cache-aside reads and the
// invalidate-after-write rule shared by every area. ns is the invalidation
// namespace, prefix the key prefix of this kind's reads.
type content[E model.Identifiable] struct {
	repo   repository.ContentRepository[E]
	ns     string
	prefix string
	cache  *cache.Aside
}

func newContent[E model.Identifiable](repo repository.ContentRepository[E], ns, prefix string, c *cache.Aside) content[E] {
	return content[E]{repo: repo, ns: ns, prefix: prefix, cache: c}
}

// list returns one page. Reads with a status override bypass the cache and
// need an editor principal in ctx.
func (c content[E]) list(ctx context.Context, filter repository.Filter, filterKey string, q model.ListQuery) (*model.ListResponse, error) {
	opts := repository.ListOptions{Page: q.Page, PageSize: q.Limit, Language: q.Language, Status: q.Status}.Normalize()

	load := func(ctx context.Context) ([]model.View, error) {
		items, err := c.repo.List(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		return model.Views(items), nil
	}

	var views []model.View
	var err error
	if opts.Status == "" {
		key := cache.Key(c.prefix, "list", filterKey, opts.Language, opts.Page, opts.PageSize)
		views, err = cache.GetOrCompute(ctx, c.cache, key, listTTL, load)
	} else {
		if err := auth.RequireEditor(auth.FromContext(ctx)); err != nil {
			return nil, err
		}
		views, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.repo.Kind().Name, err)
	}

	return &model.ListResponse{
		Data:       views,
		Pagination: model.Pagination{Page: opts.Page, Limit: opts.PageSize},
	}, nil
}

func (c content[E]) get(ctx context.Context, id int64, lang string) (model.View, error) {
	item, err := c.repo.FindByID(ctx, id, lang)
	if err != nil {
		return nil, err
	}
	return item.View(), nil
}

func (c content[E]) bySlug(ctx context.Context, slug, lang string) (model.View, error) {
	return cache.GetOrCompute(ctx, c.cache, cache.Key(c.prefix, "slug", slug, lang), listTTL,
		func(ctx context.Context) (model.View, error) {
			item, err := c.repo.FindBySlug(ctx, slug, lang)
			if err != nil {
				return nil, err
			}
			return item.View(), nil
		})
}

// all returns every visible item, cached under op.
func (c content[E]) all(ctx context.Context, op string, filter repository.Filter, lang string, ttl time.Duration) ([]model.View, error) {
	return cache.GetOrCompute(ctx, c.cache, cache.Key(c.prefix, op, lang), ttl,
		func(ctx context.Context) ([]model.View, error) {
			items, err := c.repo.All(ctx, filter, lang)
			if err != nil {
				return nil, err
			}
			return model.Views(items), nil
		})
}

// tree builds the parent-linked forest of every visible item in lang.
// parent extracts the parent id of an entity.
func (c content[E]) tree(ctx context.Context, lang string, parent func(E) *int64) ([]model.View, error) {
	return cache.GetOrCompute(ctx, c.cache, cache.Key(c.prefix, "hierarchy", lang), hierarchyTTL,
		func(ctx context.Context) ([]model.View, error) {
			items, err := c.repo.All(ctx, repository.NoFilter{}, lang)
			if err != nil {
				return nil, err
			}
			roots, err := hierarchy.Build(items,
				func(t model.Translated[E]) int64 { return t.Entity.EntityID() },
				func(t model.Translated[E]) *int64 { return parent(t.Entity) })
			if err != nil {
				return nil, err
			}
			return treeViews(roots), nil
		})
}

func treeViews[E any](nodes []*hierarchy.Node[model.Translated[E]]) []model.View {
	out := make([]model.View, 0, len(nodes))
	for _, n := range nodes {
		v := n.Item.View()
		v["children"] = treeViews(n.Children)
		out = append(out, v)
	}
	return out
}

func (c content[E]) categories(ctx context.Context) ([]string, error) {
	return cache.GetOrCompute(ctx, c.cache, cache.Key(c.prefix, "categories"), referenceTTL,
		func(ctx context.Context) ([]string, error) {
			cats, err := c.repo.DistinctCategories(ctx)
			if err != nil {
				return nil, err
			}
			if cats == nil {
				cats = []string{}
			}
			return cats, nil
		})
}

func (c content[E]) create(ctx context.Context, entity E, translations model.Translations) (E, error) {
	created, err := c.repo.Create(ctx, entity, translations)
	if err != nil {
		return created, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c content[E]) update(ctx context.Context, id int64, patch any, translations model.Translations) (E, error) {
	updated, err := c.repo.Update(ctx, id, patch, translations)
	if err != nil {
		return updated, err
	}
	c.invalidate(ctx)
	return updated, nil
}

func (c content[E]) delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c content[E]) invalidate(ctx context.Context) {
	c.cache.InvalidateByPrefix(ctx, c.ns+":*")
}

// searcher adapts a repository to the search coordinator.
func searcher[E model.Identifiable](repo repository.ContentRepository[E]) search.Searcher {
	return search.SearcherFunc(func(ctx context.Context, query, lang string, limit, offset int) ([]model.View, error) {
		items, err := repo.Search(ctx, query, lang, limit, offset)
		if err != nil {
			return nil, err
		}
		return model.Views(items), nil
	})
}

// slugFor returns slug, or one generated from the translated name in the
// default language (or the first language supplied).
func slugFor(slug string, translations model.Translations, nameColumn string, languages *i18n.Resolver) (string, error) {
	if slug != "" {
		return slug, nil
	}
	langs := make([]string, 0, len(translations)+1)
	if languages != nil {
		langs = append(langs, languages.Default())
	}
	langs = append(langs, sortedKeys(translations)...)
	for _, l := range langs {
		tr, ok := translations[l]
		if !ok {
			continue
		}
		if name := tr.Get(nameColumn); name != nil {
			if s := i18n.Slugify(*name); s != "" {
				return s, nil
			}
		}
	}
	return "", apperror.Validation("slug is required")
}

func sortedKeys(m model.Translations) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// requireID rejects non-positive identifiers before they reach storage.
func requireID(id int64) error {
	if id <= 0 {
		return apperror.Validation("invalid id %d", id)
	}
	return nil
}

func errSelfParent(id int64) error {
	return apperror.Validation("item %d cannot be its own parent", id)
}
