package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/database"
	"github.com/alexivanou/cityportal-api/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	"github.com/microcosm-cc/bluemonday"
)

const metaDescriptionLength = 160

// ContentRepository is the language-aware CRUD contract shared by every kind.
type ContentRepository[E model.Identifiable] interface {
	Kind() Kind
	FindByID(ctx context.Context, id int64, lang string) (*model.Translated[E], error)
	FindBySlug(ctx context.Context, slug string, lang string) (*model.Translated[E], error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]model.Translated[E], error)
	All(ctx context.Context, filter Filter, lang string) ([]model.Translated[E], error)
	Create(ctx context.Context, entity E, translations model.Translations) (E, error)
	Update(ctx context.Context, id int64, patch any, translations model.Translations) (E, error)
	Delete(ctx context.Context, id int64) error
	DistinctCategories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string, lang string, limit, offset int) ([]model.Translated[E], error)
	Suggest(ctx context.Context, prefix string, lang string, limit int) ([]string, error)
}

// Options are shared by all translated repositories.
type Options struct {
	Languages           []string
	MissingTranslations config.MissingTranslationPolicy
}

// TranslatedRepository implements ContentRepository over one Kind.
type TranslatedRepository[E model.Identifiable] struct {
	db        *sqlx.DB
	kind      Kind
	languages map[string]bool
	hide      bool
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewTranslatedRepository creates a repository for kind.
func NewTranslatedRepository[E model.Identifiable](db *sqlx.DB, kind Kind, opts Options) *TranslatedRepository[E] {
	langs := make(map[string]bool, len(opts.Languages))
	for _, l := range opts.Languages {
		langs[l] = true
	}
	return &TranslatedRepository[E]{
		db:        db,
		kind:      kind,
		languages: langs,
		hide:      opts.MissingTranslations == config.MissingHide,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

// joinedRow is one base row plus the (possibly absent) translation row.
type joinedRow[E any] struct {
	Entity E              `db:"e"`
	Tr     translationRow `db:"tr"`
}

type translationRow struct {
	Language        sql.NullString `db:"language"`
	Title           *string        `db:"title"`
	Name            *string        `db:"name"`
	Description     *string        `db:"description"`
	Content         *string        `db:"content"`
	Excerpt         *string        `db:"excerpt"`
	LocationName    *string        `db:"location_name"`
	Services        *string        `db:"services"`
	Address         *string        `db:"address"`
	Amenities       *string        `db:"amenities"`
	MetaTitle       *string        `db:"meta_title"`
	MetaDescription *string        `db:"meta_description"`
}

func (r translationRow) toModel() *model.Translation {
	if !r.Language.Valid {
		return nil
	}
	return &model.Translation{
		Language:        r.Language.String,
		Title:           r.Title,
		Name:            r.Name,
		Description:     r.Description,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		LocationName:    r.LocationName,
		Services:        r.Services,
		Address:         r.Address,
		Amenities:       r.Amenities,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
	}
}

func (r *TranslatedRepository[E]) Kind() Kind {
	return r.kind
}

func (r *TranslatedRepository[E]) baseColumns() []string {
	cols := make([]string, 0, len(r.kind.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, r.kind.Columns...)
	return append(cols, "created_at", "updated_at")
}

func (r *TranslatedRepository[E]) translated(e E, tr *model.Translation, lang string) model.Translated[E] {
	return model.Translated[E]{Entity: e, Translation: tr, Language: lang, Columns: r.kind.TranslationColumns}
}

// joinedSelect builds the SELECT ... FROM ... JOIN prefix. The first bind
// argument is the language.
func (r *TranslatedRepository[E]) joinedSelect(join string) string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, c := range r.baseColumns() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `b.%s AS "e.%s"`, c, c)
	}
	sb.WriteString(`, t.language AS "tr.language"`)
	for _, c := range r.kind.TranslationColumns {
		fmt.Fprintf(&sb, `, t.%s AS "tr.%s"`, c, c)
	}
	fmt.Fprintf(&sb, " FROM %s b %s %s t ON t.%s = b.id AND t.language = ?",
		r.kind.Table, join, r.kind.TranslationTable, r.kind.ForeignKey)
	return sb.String()
}

// visibility returns the predicates a default (non-privileged) read adds.
func (r *TranslatedRepository[E]) visibility(status string) ([]string, []any) {
	if !r.kind.hasStatus() {
		return nil, nil
	}
	switch status {
	case model.StatusAny:
		return nil, nil
	case "":
		conds := []string{"b.status = ?"}
		args := []any{r.kind.VisibleStatus}
		if r.kind.Visibility != nil {
			c, a := r.kind.Visibility(r.now().UTC())
			conds = append(conds, c)
			args = append(args, a...)
		}
		return conds, args
	default:
		return []string{"b.status = ?"}, []any{status}
	}
}

// selectJoined runs a joinedSelect query; args[0] is the language.
func (r *TranslatedRepository[E]) selectJoined(ctx context.Context, q string, args ...any) ([]model.Translated[E], error) {
	var rows []joinedRow[E]
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	lang, _ := args[0].(string)
	items := make([]model.Translated[E], 0, len(rows))
	for _, row := range rows {
		items = append(items, r.translated(row.Entity, row.Tr.toModel(), lang))
	}
	return items, nil
}

func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// FindByID fetches the base row, then the translation for lang. The base
// row decides existence; a missing translation is reported via Missing().
func (r *TranslatedRepository[E]) FindByID(ctx context.Context, id int64, lang string) (*model.Translated[E], error) {
	return r.findOne(ctx, "id", id, lang)
}

// FindBySlug is FindByID keyed by the unique slug.
func (r *TranslatedRepository[E]) FindBySlug(ctx context.Context, slug string, lang string) (*model.Translated[E], error) {
	if !r.kind.HasSlug {
		return nil, fmt.Errorf("%s have no slug", r.kind.Name)
	}
	return r.findOne(ctx, "slug", slug, lang)
}

func (r *TranslatedRepository[E]) findOne(ctx context.Context, column string, value any, lang string) (*model.Translated[E], error) {
	var e E
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(r.baseColumns(), ", "), r.kind.Table, column)
	if err := r.db.GetContext(ctx, &e, r.db.Rebind(q), value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("%s %v not found", r.kind.Label, value)
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.kind.Label, err)
	}

	tr, err := r.findTranslation(ctx, r.db, e.EntityID(), lang)
	if err != nil {
		return nil, err
	}
	t := r.translated(e, tr, lang)
	return &t, nil
}

func (r *TranslatedRepository[E]) findTranslation(ctx context.Context, q sqlx.QueryerContext, id int64, lang string) (*model.Translation, error) {
	query := fmt.Sprintf("SELECT language, %s FROM %s WHERE %s = ? AND language = ?",
		strings.Join(r.kind.TranslationColumns, ", "), r.kind.TranslationTable, r.kind.ForeignKey)
	var row translationRow
	if err := sqlx.GetContext(ctx, q, &row, r.db.Rebind(query), id, lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s translation: %w", r.kind.Label, err)
	}
	return row.toModel(), nil
}

// List returns one page of the filtered, ordered set. A page past the end
// is an empty slice.
func (r *TranslatedRepository[E]) List(ctx context.Context, filter Filter, opts ListOptions) ([]model.Translated[E], error) {
	opts = opts.Normalize()
	conds, args := r.listConditions(filter, opts.Status)

	q := r.joinedSelect("LEFT JOIN") + where(conds) + " ORDER BY " + r.kind.Order + " LIMIT ? OFFSET ?"
	all := append([]any{opts.Language}, args...)
	all = append(all, opts.PageSize, opts.Offset())

	items, err := r.selectJoined(ctx, q, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind.Name, err)
	}
	return items, nil
}

// All returns every visible row matching filter, unpaginated. Used for
// trees and other small collections.
func (r *TranslatedRepository[E]) All(ctx context.Context, filter Filter, lang string) ([]model.Translated[E], error) {
	conds, args := r.listConditions(filter, "")
	q := r.joinedSelect("LEFT JOIN") + where(conds) + " ORDER BY " + r.kind.Order

	items, err := r.selectJoined(ctx, q, append([]any{lang}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind.Name, err)
	}
	return items, nil
}

func (r *TranslatedRepository[E]) listConditions(filter Filter, status string) ([]string, []any) {
	conds, args := r.visibility(status)
	if filter != nil {
		c, a := filter.Where()
		conds = append(conds, c...)
		args = append(args, a...)
	}
	if r.hide {
		conds = append(conds, "t.language IS NOT NULL")
	}
	return conds, args
}

// Search matches query as a case-insensitive substring of the kind's
// search columns in lang, within visible rows.
func (r *TranslatedRepository[E]) Search(ctx context.Context, query string, lang string, limit, offset int) ([]model.Translated[E], error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	conds, args := r.visibility("")
	if r.kind.SearchScope != nil {
		c, a := r.kind.SearchScope(r.now().UTC())
		conds = append(conds, c)
		args = append(args, a...)
	}
	var ors []string
	for _, c := range r.kind.SearchColumns {
		ors = append(ors, fmt.Sprintf("LOWER(t.%s) LIKE ? ESCAPE '\\'", c))
		args = append(args, pattern)
	}
	conds = append(conds, "("+strings.Join(ors, " OR ")+")")

	q := r.joinedSelect("JOIN") + where(conds) + " ORDER BY " + r.kind.Order + " LIMIT ? OFFSET ?"
	all := append([]any{lang}, args...)
	all = append(all, limit, offset)

	items, err := r.selectJoined(ctx, q, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", r.kind.Name, err)
	}
	return items, nil
}

// Suggest returns visible names in lang that start with prefix.
func (r *TranslatedRepository[E]) Suggest(ctx context.Context, prefix string, lang string, limit int) ([]string, error) {
	conds, args := r.visibility("")
	conds = append([]string{"t.language = ?", fmt.Sprintf("LOWER(t.%s) LIKE ? ESCAPE '\\'", r.kind.NameColumn)}, conds...)
	args = append([]any{lang, escapeLike(strings.ToLower(prefix)) + "%"}, args...)

	q := fmt.Sprintf("SELECT t.%s FROM %s t JOIN %s b ON b.id = t.%s%s ORDER BY t.%s ASC LIMIT ?",
		r.kind.NameColumn, r.kind.TranslationTable, r.kind.Table, r.kind.ForeignKey, where(conds), r.kind.NameColumn)
	args = append(args, limit)

	var names []string
	if err := r.db.SelectContext(ctx, &names, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("failed to suggest %s: %w", r.kind.Name, err)
	}
	return names, nil
}

// DistinctCategories lists the non-null values of the kind's category column.
func (r *TranslatedRepository[E]) DistinctCategories(ctx context.Context) ([]string, error) {
	if r.kind.CategoryColumn == "" {
		return nil, fmt.Errorf("%s have no category column", r.kind.Name)
	}
	c := r.kind.CategoryColumn
	q := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s", c, r.kind.Table, c, c)
	var cats []string
	if err := r.db.SelectContext(ctx, &cats, q); err != nil {
		return nil, fmt.Errorf("failed to get %s categories: %w", r.kind.Name, err)
	}
	return cats, nil
}

// Create inserts the base row and its translations in one transaction and
// returns the stored base row.
func (r *TranslatedRepository[E]) Create(ctx context.Context, entity E, translations model.Translations) (E, error) {
	var zero E
	if err := validateStruct(entity); err != nil {
		return zero, err
	}
	if len(translations) == 0 {
		return zero, apperror.Validation("at least one translation is required")
	}
	prepared, err := r.prepareTranslations(translations, true)
	if err != nil {
		return zero, err
	}

	now := r.now().UTC()
	v := reflect.ValueOf(&entity).Elem()
	if r.kind.DraftStatus != "" {
		if f := r.field(v, "status"); f.IsValid() && f.String() == "" {
			f.SetString(r.kind.DraftStatus)
		}
	}
	for _, col := range []string{"created_at", "updated_at"} {
		if f := r.field(v, col); f.IsValid() {
			f.Set(reflect.ValueOf(now))
		}
	}
	for _, col := range r.kind.Columns {
		if f := r.field(v, col); f.IsValid() {
			normalizeTime(f)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	cols := append(append([]string{}, r.kind.Columns...), "created_at", "updated_at")
	named := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s) RETURNING %s",
		r.kind.Table, strings.Join(cols, ", "), strings.Join(cols, ", :"), strings.Join(r.baseColumns(), ", "))
	q, args, err := sqlx.Named(named, entity)
	if err != nil {
		return zero, fmt.Errorf("failed to bind %s: %w", r.kind.Label, err)
	}

	var created E
	if err := tx.GetContext(ctx, &created, tx.Rebind(q), args...); err != nil {
		return zero, fmt.Errorf("failed to insert %s: %w", r.kind.Label, database.ClassifyError(err))
	}

	for _, lang := range sortedLanguages(prepared) {
		if err := r.insertTranslation(ctx, tx, created.EntityID(), lang, prepared[lang]); err != nil {
			return zero, err
		}
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("failed to commit %s: %w", r.kind.Label, err)
	}
	return created, nil
}

// Update applies the non-nil fields of patch and upserts the given
// translations. A language without a stored row is inserted and needs a name.
func (r *TranslatedRepository[E]) Update(ctx context.Context, id int64, patch any, translations model.Translations) (E, error) {
	var zero E
	sets, err := r.patchColumns(patch)
	if err != nil {
		return zero, err
	}
	prepared, err := r.prepareTranslations(translations, false)
	if err != nil {
		return zero, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", r.kind.Table)
	if err := tx.GetContext(ctx, &exists, tx.Rebind(q), id); err != nil {
		return zero, fmt.Errorf("failed to check %s: %w", r.kind.Label, err)
	}
	if exists == 0 {
		return zero, apperror.NotFound("%s %d not found", r.kind.Label, id)
	}

	sets = append(sets, column{name: "updated_at", value: r.now().UTC()})
	assignments := make([]string, 0, len(sets))
	args := make([]any, 0, len(sets)+1)
	for _, s := range sets {
		assignments = append(assignments, s.name+" = ?")
		args = append(args, s.value)
	}
	args = append(args, id)
	q = fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING %s",
		r.kind.Table, strings.Join(assignments, ", "), strings.Join(r.baseColumns(), ", "))

	var updated E
	if err := tx.GetContext(ctx, &updated, tx.Rebind(q), args...); err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", r.kind.Label, database.ClassifyError(err))
	}

	for _, lang := range sortedLanguages(prepared) {
		if err := r.upsertTranslation(ctx, tx, id, lang, prepared[lang]); err != nil {
			return zero, err
		}
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("failed to commit %s: %w", r.kind.Label, err)
	}
	return updated, nil
}

// Delete removes the translations and then the base row.
func (r *TranslatedRepository[E]) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", r.kind.TranslationTable, r.kind.ForeignKey)
	if _, err := tx.ExecContext(ctx, tx.Rebind(q), id); err != nil {
		return fmt.Errorf("failed to delete %s translations: %w", r.kind.Label, err)
	}

	q = fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.kind.Table)
	res, err := tx.ExecContext(ctx, tx.Rebind(q), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind.Label, database.ClassifyError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind.Label, err)
	}
	if n == 0 {
		return apperror.NotFound("%s %d not found", r.kind.Label, id)
	}

	return tx.Commit()
}

func (r *TranslatedRepository[E]) insertTranslation(ctx context.Context, tx *sqlx.Tx, id int64, lang string, tr model.Translation) error {
	cols := []string{r.kind.ForeignKey, "language"}
	args := []any{id, lang}
	for _, c := range r.kind.TranslationColumns {
		if v := tr.Get(c); v != nil {
			cols = append(cols, c)
			args = append(args, *v)
		}
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.kind.TranslationTable, strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	if _, err := tx.ExecContext(ctx, tx.Rebind(q), args...); err != nil {
		return fmt.Errorf("failed to insert %s translation %q: %w", r.kind.Label, lang, database.ClassifyError(err))
	}
	return nil
}

func (r *TranslatedRepository[E]) upsertTranslation(ctx context.Context, tx *sqlx.Tx, id int64, lang string, tr model.Translation) error {
	existing, err := r.findTranslation(ctx, tx, id, lang)
	if err != nil {
		return err
	}
	if existing == nil {
		if blank(tr.Get(r.kind.NameColumn)) {
			return apperror.Validation("translation %q needs a %s", lang, r.kind.NameColumn)
		}
		r.deriveMeta(&tr)
		return r.insertTranslation(ctx, tx, id, lang, tr)
	}

	var assignments []string
	var args []any
	for _, c := range r.kind.TranslationColumns {
		if v := tr.Get(c); v != nil {
			assignments = append(assignments, c+" = ?")
			args = append(args, *v)
		}
	}
	if len(assignments) == 0 {
		return nil
	}
	args = append(args, id, lang)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? AND language = ?",
		r.kind.TranslationTable, strings.Join(assignments, ", "), r.kind.ForeignKey)
	if _, err := tx.ExecContext(ctx, tx.Rebind(q), args...); err != nil {
		return fmt.Errorf("failed to update %s translation %q: %w", r.kind.Label, lang, database.ClassifyError(err))
	}
	return nil
}

// prepareTranslations checks languages and names, sanitizes HTML content and,
// on create, derives SEO fields.
func (r *TranslatedRepository[E]) prepareTranslations(in model.Translations, creating bool) (model.Translations, error) {
	out := make(model.Translations, len(in))
	for lang, tr := range in {
		if !r.languages[lang] {
			return nil, apperror.Validation("unsupported language %q", lang)
		}
		name := tr.Get(r.kind.NameColumn)
		if creating && blank(name) {
			return nil, apperror.Validation("translation %q needs a %s", lang, r.kind.NameColumn)
		}
		if !creating && name != nil && blank(name) {
			return nil, apperror.Validation("translation %q: %s must not be empty", lang, r.kind.NameColumn)
		}
		tr.Language = lang
		if c := tr.Get("content"); c != nil {
			clean := r.sanitizer.Sanitize(*c)
			tr.Set("content", &clean)
		}
		if creating {
			r.deriveMeta(&tr)
		}
		out[lang] = tr
	}
	return out, nil
}

func (r *TranslatedRepository[E]) deriveMeta(tr *model.Translation) {
	if !r.kind.HasMeta {
		return
	}
	if tr.MetaTitle == nil {
		tr.MetaTitle = tr.Get(r.kind.NameColumn)
	}
	if tr.MetaDescription == nil {
		src := tr.Description
		if src == nil {
			src = tr.Excerpt
		}
		if src != nil {
			d := truncate(*src, metaDescriptionLength)
			tr.MetaDescription = &d
		}
	}
}

type column struct {
	name  string
	value any
}

// patchColumns reads the non-nil pointer fields of patch by their db tag.
func (r *TranslatedRepository[E]) patchColumns(patch any) ([]column, error) {
	if patch == nil {
		return nil, nil
	}
	v := reflect.ValueOf(patch)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("patch for %s must be a struct, got %T", r.kind.Name, patch)
	}
	if err := validateStruct(v.Interface()); err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(r.kind.Columns))
	for _, c := range r.kind.Columns {
		allowed[c] = true
	}

	var cols []column
	for _, fi := range r.db.Mapper.TypeMap(v.Type()).Index {
		if len(fi.Index) != 1 || fi.Name == "" {
			continue
		}
		f := v.Field(fi.Index[0])
		if f.Kind() != reflect.Pointer || f.IsNil() {
			continue
		}
		if !allowed[fi.Name] {
			return nil, fmt.Errorf("%s has no writable column %q", r.kind.Name, fi.Name)
		}
		value := f.Elem().Interface()
		if t, ok := value.(time.Time); ok {
			value = t.UTC()
		}
		cols = append(cols, column{name: fi.Name, value: value})
	}
	return cols, nil
}

// normalizeTime stores time columns in UTC. SQLite compares timestamps as
// text, so every stored value must share one offset.
func normalizeTime(f reflect.Value) {
	switch t := f.Interface().(type) {
	case time.Time:
		f.Set(reflect.ValueOf(t.UTC()))
	case *time.Time:
		if t != nil {
			utc := t.UTC()
			f.Set(reflect.ValueOf(&utc))
		}
	}
}

func (r *TranslatedRepository[E]) field(v reflect.Value, column string) reflect.Value {
	fi := r.db.Mapper.TypeMap(v.Type()).GetByPath(column)
	if fi == nil {
		return reflect.Value{}
	}
	return reflectx.FieldByIndexes(v, fi.Index)
}

func sortedLanguages(m model.Translations) []string {
	langs := make([]string, 0, len(m))
	for l := range m {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
