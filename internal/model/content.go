package model

import "time"

// Status values. StatusAny disables the status constraint on lists.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
	StatusAny       = "*"
)

// Page is a portal page. Pages form a navigation forest through ParentID.
type Page struct {
	ID            int64     `db:"id" json:"id"`
	Slug          string    `db:"slug" json:"slug" validate:"required,max=255"`
	Template      string    `db:"template" json:"template"`
	ParentID      *int64    `db:"parent_id" json:"parentId"`
	SortOrder     int       `db:"sort_order" json:"sortOrder"`
	Status        string    `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
	CreatedBy     *int64    `db:"created_by" json:"createdBy"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Event is a dated happening in the city.
type Event struct {
	ID              int64      `db:"id" json:"id"`
	Category        *string    `db:"category" json:"category"`
	StartDate       time.Time  `db:"start_date" json:"startDate" validate:"required"`
	EndDate         *time.Time `db:"end_date" json:"endDate"`
	AllDay          bool       `db:"all_day" json:"allDay"`
	Recurring       JSONText   `db:"recurring" json:"recurring"`
	LocationLat     *float64   `db:"location_lat" json:"locationLat" validate:"omitempty,latitude"`
	LocationLng     *float64   `db:"location_lng" json:"locationLng" validate:"omitempty,longitude"`
	LocationAddress *string    `db:"location_address" json:"locationAddress"`
	FeaturedImage   *string    `db:"featured_image" json:"featuredImage"`
	IsFeatured      bool       `db:"is_featured" json:"isFeatured"`
	Status          string     `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
	CreatedBy       *int64     `db:"created_by" json:"createdBy"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// News is a dated article.
type News struct {
	ID            int64      `db:"id" json:"id"`
	Slug          string     `db:"slug" json:"slug" validate:"required,max=255"`
	Category      *string    `db:"category" json:"category"`
	FeaturedImage *string    `db:"featured_image" json:"featuredImage"`
	IsFeatured    bool       `db:"is_featured" json:"isFeatured"`
	Status        string     `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   *time.Time `db:"published_at" json:"publishedAt"`
	AuthorID      *int64     `db:"author_id" json:"authorId"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// Business is a business-directory listing.
type Business struct {
	ID           int64     `db:"id" json:"id"`
	CategoryID   int64     `db:"category_id" json:"categoryId" validate:"required"`
	District     *string   `db:"district" json:"district"`
	Address      string    `db:"address" json:"address" validate:"required"`
	PostalCode   string    `db:"postal_code" json:"postalCode" validate:"required"`
	City         string    `db:"city" json:"city"`
	Phone        *string   `db:"phone" json:"phone"`
	Email        *string   `db:"email" json:"email" validate:"omitempty,email"`
	Website      *string   `db:"website" json:"website" validate:"omitempty,url"`
	Lat          *float64  `db:"lat" json:"lat" validate:"omitempty,latitude"`
	Lng          *float64  `db:"lng" json:"lng" validate:"omitempty,longitude"`
	OpeningHours JSONText  `db:"opening_hours" json:"openingHours"`
	Logo         *string   `db:"logo" json:"logo"`
	Images       JSONText  `db:"images" json:"images"`
	IsVerified   bool      `db:"is_verified" json:"isVerified"`
	IsPremium    bool      `db:"is_premium" json:"isPremium"`
	Status       string    `db:"status" json:"status" validate:"omitempty,oneof=pending active inactive suspended"`
	OwnerID      *int64    `db:"owner_id" json:"ownerId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Category is a translated business category. Categories nest through ParentID.
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug" validate:"required,max=255"`
	Icon      *string   `db:"icon" json:"icon"`
	ParentID  *int64    `db:"parent_id" json:"parentId"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// District is a city district.
type District struct {
	ID            int64     `db:"id" json:"id"`
	Slug          string    `db:"slug" json:"slug" validate:"required,max=255"`
	CenterLat     *float64  `db:"center_lat" json:"centerLat" validate:"omitempty,latitude"`
	CenterLng     *float64  `db:"center_lng" json:"centerLng" validate:"omitempty,longitude"`
	Boundaries    JSONText  `db:"boundaries" json:"boundaries"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// POI is a point of interest.
type POI struct {
	ID            int64     `db:"id" json:"id"`
	Category      *string   `db:"category" json:"category"`
	DistrictID    *int64    `db:"district_id" json:"districtId"`
	Lat           *float64  `db:"lat" json:"lat" validate:"omitempty,latitude"`
	Lng           *float64  `db:"lng" json:"lng" validate:"omitempty,longitude"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
	Images        JSONText  `db:"images" json:"images"`
	Website       *string   `db:"website" json:"website" validate:"omitempty,url"`
	Phone         *string   `db:"phone" json:"phone"`
	OpeningHours  JSONText  `db:"opening_hours" json:"openingHours"`
	Status        string    `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Accommodation is a place to stay.
type Accommodation struct {
	ID            int64     `db:"id" json:"id"`
	Type          string    `db:"type" json:"type" validate:"required,oneof=hotel hostel apartment pension camping"`
	Stars         *int      `db:"stars" json:"stars" validate:"omitempty,min=1,max=5"`
	DistrictID    *int64    `db:"district_id" json:"districtId"`
	Address       *string   `db:"address" json:"address"`
	Lat           *float64  `db:"lat" json:"lat" validate:"omitempty,latitude"`
	Lng           *float64  `db:"lng" json:"lng" validate:"omitempty,longitude"`
	Phone         *string   `db:"phone" json:"phone"`
	Email         *string   `db:"email" json:"email" validate:"omitempty,email"`
	Website       *string   `db:"website" json:"website" validate:"omitempty,url"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
	Images        JSONText  `db:"images" json:"images"`
	PriceFrom     *float64  `db:"price_from" json:"priceFrom" validate:"omitempty,gte=0"`
	PriceTo       *float64  `db:"price_to" json:"priceTo" validate:"omitempty,gte=0"`
	Status        string    `db:"status" json:"status" validate:"omitempty,oneof=active inactive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Identifiable is implemented by every base entity.
type Identifiable interface {
	EntityID() int64
}

func (p Page) EntityID() int64          { return p.ID }
func (e Event) EntityID() int64         { return e.ID }
func (n News) EntityID() int64          { return n.ID }
func (b Business) EntityID() int64      { return b.ID }
func (c Category) EntityID() int64      { return c.ID }
func (d District) EntityID() int64      { return d.ID }
func (p POI) EntityID() int64           { return p.ID }
func (a Accommodation) EntityID() int64 { return a.ID }
