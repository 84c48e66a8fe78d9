package repository

import "time"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Filter narrows a list query to kind-specific predicates.
type Filter interface {
	Where() ([]string, []any)
}

// NoFilter adds no predicate.
type NoFilter struct{}

func (NoFilter) Where() ([]string, []any) { return nil, nil }

// ListOptions controls pagination, language and status of list reads.
// An empty Status means the kind's visible status; model.StatusAny drops
// the status predicate.
type ListOptions struct {
	Page     int
	PageSize int
	Language string
	Status   string
}

// Normalize clamps the page to >= 1 and the page size to [1, 100].
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.PageSize > maxPageSize {
		o.PageSize = maxPageSize
	}
	return o
}

// Offset returns (page-1)*pageSize.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

type PageFilter struct {
	ParentID *int64
	RootOnly bool
}

func (f PageFilter) Where() ([]string, []any) {
	switch {
	case f.ParentID != nil:
		return []string{"b.parent_id = ?"}, []any{*f.ParentID}
	case f.RootOnly:
		return []string{"b.parent_id IS NULL"}, nil
	}
	return nil, nil
}

type EventFilter struct {
	Category *string
	From     *time.Time
	To       *time.Time
	Featured *bool
}

func (f EventFilter) Where() ([]string, []any) {
	var conds []string
	var args []any
	if f.Category != nil {
		conds = append(conds, "b.category = ?")
		args = append(args, *f.Category)
	}
	if f.From != nil {
		conds = append(conds, "b.start_date >= ?")
		args = append(args, f.From.UTC())
	}
	if f.To != nil {
		conds = append(conds, "b.start_date < ?")
		args = append(args, f.To.UTC())
	}
	if f.Featured != nil {
		conds = append(conds, "b.is_featured = ?")
		args = append(args, *f.Featured)
	}
	return conds, args
}

type NewsFilter struct {
	Category *string
	Featured *bool
}

func (f NewsFilter) Where() ([]string, []any) {
	var conds []string
	var args []any
	if f.Category != nil {
		conds = append(conds, "b.category = ?")
		args = append(args, *f.Category)
	}
	if f.Featured != nil {
		conds = append(conds, "b.is_featured = ?")
		args = append(args, *f.Featured)
	}
	return conds, args
}

type BusinessFilter struct {
	CategoryID *int64
	District   *string
	Verified   *bool
	OwnerID    *int64
}

func (f BusinessFilter) Where() ([]string, []any) {
	var conds []string
	var args []any
	if f.CategoryID != nil {
		conds = append(conds, "b.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.District != nil {
		conds = append(conds, "b.district = ?")
		args = append(args, *f.District)
	}
	if f.Verified != nil {
		conds = append(conds, "b.is_verified = ?")
		args = append(args, *f.Verified)
	}
	if f.OwnerID != nil {
		conds = append(conds, "b.owner_id = ?")
		args = append(args, *f.OwnerID)
	}
	return conds, args
}

type CategoryFilter struct {
	ParentID *int64
}

func (f CategoryFilter) Where() ([]string, []any) {
	if f.ParentID != nil {
		return []string{"b.parent_id = ?"}, []any{*f.ParentID}
	}
	return nil, nil
}

type POIFilter struct {
	Category   *string
	DistrictID *int64
}

func (f POIFilter) Where() ([]string, []any) {
	var conds []string
	var args []any
	if f.Category != nil {
		conds = append(conds, "b.category = ?")
		args = append(args, *f.Category)
	}
	if f.DistrictID != nil {
		conds = append(conds, "b.district_id = ?")
		args = append(args, *f.DistrictID)
	}
	return conds, args
}

type AccommodationFilter struct {
	Type       *string
	Stars      *int
	DistrictID *int64
}

func (f AccommodationFilter) Where() ([]string, []any) {
	var conds []string
	var args []any
	if f.Type != nil {
		conds = append(conds, "b.type = ?")
		args = append(args, *f.Type)
	}
	if f.Stars != nil {
		conds = append(conds, "b.stars = ?")
		args = append(args, *f.Stars)
	}
	if f.DistrictID != nil {
		conds = append(conds, "b.district_id = ?")
		args = append(args, *f.DistrictID)
	}
	return conds, args
}
