package model

import "time"

// Patches carry only the attributes a caller wants to change: nil fields
// are left untouched. Field tags mirror the entity columns.

type PagePatch struct {
	Slug          *string `db:"slug" json:"slug" validate:"omitempty,min=1,max=255"`
	Template      *string `db:"template" json:"template"`
	ParentID      *int64  `db:"parent_id" json:"parentId"`
	SortOrder     *int    `db:"sort_order" json:"sortOrder"`
	Status        *string `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
	FeaturedImage *string `db:"featured_image" json:"featuredImage"`
}

type EventPatch struct {
	Category        *string    `db:"category" json:"category"`
	StartDate       *time.Time `db:"start_date" json:"startDate"`
	EndDate         *time.Time `db:"end_date" json:"endDate"`
	AllDay          *bool      `db:"all_day" json:"allDay"`
	Recurring       *JSONText  `db:"recurring" json:"recurring"`
	LocationLat     *float64   `db:"location_lat" json:"locationLat" validate:"omitempty,latitude"`
	LocationLng     *float64   `db:"location_lng" json:"locationLng" validate:"omitempty,longitude"`
	LocationAddress *string    `db:"location_address" json:"locationAddress"`
	FeaturedImage   *string    `db:"featured_image" json:"featuredImage"`
	IsFeatured      *bool      `db:"is_featured" json:"isFeatured"`
	Status          *string    `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
}

type NewsPatch struct {
	Slug          *string    `db:"slug" json:"slug" validate:"omitempty,min=1,max=255"`
	Category      *string    `db:"category" json:"category"`
	FeaturedImage *string    `db:"featured_image" json:"featuredImage"`
	IsFeatured    *bool      `db:"is_featured" json:"isFeatured"`
	Status        *string    `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   *time.Time `db:"published_at" json:"publishedAt"`
}

type BusinessPatch struct {
	CategoryID   *int64    `db:"category_id" json:"categoryId" validate:"omitempty,min=1"`
	District     *string   `db:"district" json:"district"`
	Address      *string   `db:"address" json:"address" validate:"omitempty,min=1"`
	PostalCode   *string   `db:"postal_code" json:"postalCode" validate:"omitempty,min=1"`
	City         *string   `db:"city" json:"city"`
	Phone        *string   `db:"phone" json:"phone"`
	Email        *string   `db:"email" json:"email" validate:"omitempty,email"`
	Website      *string   `db:"website" json:"website" validate:"omitempty,url"`
	Lat          *float64  `db:"lat" json:"lat" validate:"omitempty,latitude"`
	Lng          *float64  `db:"lng" json:"lng" validate:"omitempty,longitude"`
	OpeningHours *JSONText `db:"opening_hours" json:"openingHours"`
	Logo         *string   `db:"logo" json:"logo"`
	Images       *JSONText `db:"images" json:"images"`
	IsVerified   *bool     `db:"is_verified" json:"-"`
	IsPremium    *bool     `db:"is_premium" json:"isPremium"`
	Status       *string   `db:"status" json:"status" validate:"omitempty,oneof=pending active inactive suspended"`
}

type CategoryPatch struct {
	Slug      *string `db:"slug" json:"slug" validate:"omitempty,min=1,max=255"`
	Icon      *string `db:"icon" json:"icon"`
	ParentID  *int64  `db:"parent_id" json:"parentId"`
	SortOrder *int    `db:"sort_order" json:"sortOrder"`
}

type DistrictPatch struct {
	Slug          *string   `db:"slug" json:"slug" validate:"omitempty,min=1,max=255"`
	CenterLat     *float64  `db:"center_lat" json:"centerLat" validate:"omitempty,latitude"`
	CenterLng     *float64  `db:"center_lng" json:"centerLng" validate:"omitempty,longitude"`
	Boundaries    *JSONText `db:"boundaries" json:"boundaries"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
}

type POIPatch struct {
	Category      *string   `db:"category" json:"category"`
	DistrictID    *int64    `db:"district_id" json:"districtId"`
	Lat           *float64  `db:"lat" json:"lat" validate:"omitempty,latitude"`
	Lng           *float64  `db:"lng" json:"lng" validate:"omitempty,longitude"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
	Images        *JSONText `db:"images" json:"images"`
	Website       *string   `db:"website" json:"website" validate:"omitempty,url"`
	Phone         *string   `db:"phone" json:"phone"`
	OpeningHours  *JSONText `db:"opening_hours" json:"openingHours"`
	Status        *string   `db:"status" json:"status" validate:"omitempty,oneof=draft published archived"`
}

type AccommodationPatch struct {
	Type          *string   `db:"type" json:"type" validate:"omitempty,oneof=hotel hostel apartment pension camping"`
	Stars         *int      `db:"stars" json:"stars" validate:"omitempty,min=1,max=5"`
	DistrictID    *int64    `db:"district_id" json:"districtId"`
	Address       *string   `db:"address" json:"address"`
	Lat           *float64  `db:"lat" json:"lat" validate:"omitempty,latitude"`
	Lng           *float64  `db:"lng" json:"lng" validate:"omitempty,longitude"`
	Phone         *string   `db:"phone" json:"phone"`
	Email         *string   `db:"email" json:"email" validate:"omitempty,email"`
	Website       *string   `db:"website" json:"website" validate:"omitempty,url"`
	FeaturedImage *string   `db:"featured_image" json:"featuredImage"`
	Images        *JSONText `db:"images" json:"images"`
	PriceFrom     *float64  `db:"price_from" json:"priceFrom" validate:"omitempty,gte=0"`
	PriceTo       *float64  `db:"price_to" json:"priceTo" validate:"omitempty,gte=0"`
	Status        *string   `db:"status" json:"status" validate:"omitempty,oneof=active inactive"`
}
