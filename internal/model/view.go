package model

import (
	"bytes"
	"encoding/json"
)

// Translated is a base entity merged with its translation in one language.
// Translation is nil when no row exists for that language.
type Translated[E any] struct {
	Entity      E
	Translation *Translation
	Language    string
	// Columns lists the translated columns of the entity's kind.
	Columns []string
}

// Missing reports the soft translation-missing condition.
func (t Translated[E]) Missing() bool {
	return t.Translation == nil
}

// Text returns the translated value of column, or "" when absent.
func (t Translated[E]) Text(column string) string {
	if t.Translation == nil {
		return ""
	}
	if v := t.Translation.Get(column); v != nil {
		return *v
	}
	return ""
}

// View is the flattened response shape of a translated entity. It is what
// services cache and handlers encode.
type View map[string]any

// View flattens the entity attributes and the translated fields into one
// object. Translated fields of a missing translation are null.
func (t Translated[E]) View() View {
	v := View{}
	b, err := json.Marshal(t.Entity)
	if err == nil {
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		_ = dec.Decode(&v)
	}

	for _, col := range t.Columns {
		var val any
		if t.Translation != nil {
			if s := t.Translation.Get(col); s != nil {
				val = *s
			}
		}
		v[JSONName(col)] = val
	}
	v["language"] = t.Language
	v["translationMissing"] = t.Missing()
	return v
}

// Views converts a list of translated entities.
func Views[E any](items []Translated[E]) []View {
	out := make([]View, 0, len(items))
	for _, it := range items {
		out = append(out, it.View())
	}
	return out
}

// ID returns the numeric "id" of a view, or 0.
func (v View) ID() int64 {
	switch id := v["id"].(type) {
	case json.Number:
		n, _ := id.Int64()
		return n
	case float64:
		return int64(id)
	case int64:
		return id
	}
	return 0
}
