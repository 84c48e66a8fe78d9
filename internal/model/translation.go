package model

import (
	"bytes"
	"encoding/json"
)

// Translation is the per-language text of a content item. Only the columns
// that exist in a kind's translation table are ever populated.
type Translation struct {
	Language        string  `json:"language"`
	Title           *string `json:"title,omitempty"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Content         *string `json:"content,omitempty"`
	Excerpt         *string `json:"excerpt,omitempty"`
	LocationName    *string `json:"locationName,omitempty"`
	Services        *string `json:"services,omitempty"`
	Address         *string `json:"address,omitempty"`
	Amenities       *string `json:"amenities,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
}

// Translations maps language code to translated text.
type Translations map[string]Translation

// translationFields maps translation columns to their JSON names.
var translationFields = map[string]string{
	"title":            "title",
	"name":             "name",
	"description":      "description",
	"content":          "content",
	"excerpt":          "excerpt",
	"location_name":    "locationName",
	"services":         "services",
	"address":          "address",
	"amenities":        "amenities",
	"meta_title":       "metaTitle",
	"meta_description": "metaDescription",
}

// JSONName returns the response key for a translation column.
func JSONName(column string) string {
	if n, ok := translationFields[column]; ok {
		return n
	}
	return column
}

// Field returns a pointer to the value stored for column, or nil for
// unknown columns.
func (t *Translation) Field(column string) **string {
	switch column {
	case "title":
		return &t.Title
	case "name":
		return &t.Name
	case "description":
		return &t.Description
	case "content":
		return &t.Content
	case "excerpt":
		return &t.Excerpt
	case "location_name":
		return &t.LocationName
	case "services":
		return &t.Services
	case "address":
		return &t.Address
	case "amenities":
		return &t.Amenities
	case "meta_title":
		return &t.MetaTitle
	case "meta_description":
		return &t.MetaDescription
	}
	return nil
}

// Get returns the value of column, or nil when unset.
func (t *Translation) Get(column string) *string {
	if f := t.Field(column); f != nil {
		return *f
	}
	return nil
}

// Set stores v under column. Unknown columns are ignored.
func (t *Translation) Set(column string, v *string) {
	if f := t.Field(column); f != nil {
		*f = v
	}
}

// JSONText is a raw JSON document stored in a text column.
type JSONText json.RawMessage

// Scan implements sql.Scanner.
func (j *JSONText) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONText(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		*j = b
	}
	return nil
}

// Value implements driver.Valuer. Empty documents are stored as NULL.
func (j JSONText) Value() (any, error) {
	if len(bytes.TrimSpace(j)) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// MarshalJSON emits the stored document as-is.
func (j JSONText) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(j)) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON stores a copy of data.
func (j *JSONText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*j = nil
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

// String returns a pointer to s, for building translations and patches.
func String(s string) *string {
	return &s
}
