package model

// ListQuery carries pagination, language and the optional status override
// of a list request.
type ListQuery struct {
	Page     int
	Limit    int
	Language string
	Status   string
}

// Pagination echoes the effective page and page size.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ListResponse is one page of translated items.
type ListResponse struct {
	Data       []View     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DataResponse wraps a single payload.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse is returned by writes.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SearchRequest represents the query parameters of a global search.
type SearchRequest struct {
	Query string
	Type  string
	Lang  string
	Page  int
	Limit int
}

// SearchResponse is the global search envelope. Data is a map of kind to
// items for type "all", otherwise the requested kind's items.
type SearchResponse struct {
	Query      string     `json:"query"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SuggestRequest represents the request parameters for title suggestions.
type SuggestRequest struct {
	Query string
	Lang  string
}

// SuggestResponse holds matching titles.
type SuggestResponse struct {
	Data []string `json:"data"`
}

// UITranslationsResponse carries the static UI strings of one language,
// grouped by section.
type UITranslationsResponse struct {
	Language string                       `json:"language"`
	Data     map[string]map[string]string `json:"data"`
}

// Create requests embed the entity so its JSON fields sit at the top level
// next to the translations map.

type PageRequest struct {
	Page
	Translations Translations `json:"translations"`
}

type EventRequest struct {
	Event
	Translations Translations `json:"translations"`
}

type NewsRequest struct {
	News
	Translations Translations `json:"translations"`
}

type BusinessRequest struct {
	Business
	Translations Translations `json:"translations"`
}

type CategoryRequest struct {
	Category
	Translations Translations `json:"translations"`
}

type DistrictRequest struct {
	District
	Translations Translations `json:"translations"`
}

type POIRequest struct {
	POI
	Translations Translations `json:"translations"`
}

type AccommodationRequest struct {
	Accommodation
	Translations Translations `json:"translations"`
}

// Update requests pair a patch with translations to upsert.

type PageUpdate struct {
	PagePatch
	Translations Translations `json:"translations"`
}

type EventUpdate struct {
	EventPatch
	Translations Translations `json:"translations"`
}

type NewsUpdate struct {
	NewsPatch
	Translations Translations `json:"translations"`
}

type BusinessUpdate struct {
	BusinessPatch
	Translations Translations `json:"translations"`
}

type CategoryUpdate struct {
	CategoryPatch
	Translations Translations `json:"translations"`
}

type DistrictUpdate struct {
	DistrictPatch
	Translations Translations `json:"translations"`
}

type POIUpdate struct {
	POIPatch
	Translations Translations `json:"translations"`
}

type AccommodationUpdate struct {
	AccommodationPatch
	Translations Translations `json:"translations"`
}
