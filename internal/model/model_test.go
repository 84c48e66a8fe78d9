package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslated_View(t *testing.T) {
	page := Page{ID: 7, Slug: "about", Status: StatusPublished}

	t.Run("translation present", func(t *testing.T) {
		tr := &Translation{Language: "en", Title: String("About"), Description: String("Who we are")}
		v := Translated[Page]{Entity: page, Translation: tr, Language: "en", Columns: []string{"title", "description", "meta_title"}}.View()

		assert.Equal(t, int64(7), v.ID())
		assert.Equal(t, "about", v["slug"])
		assert.Equal(t, "About", v["title"])
		assert.Equal(t, "Who we are", v["description"])
		assert.Nil(t, v["metaTitle"])
		assert.Equal(t, false, v["translationMissing"])
	})

	t.Run("translation missing", func(t *testing.T) {
		v := Translated[Page]{Entity: page, Language: "fr", Columns: []string{"title", "description"}}.View()

		assert.Contains(t, v, "title")
		assert.Nil(t, v["title"])
		assert.Nil(t, v["description"])
		assert.Equal(t, true, v["translationMissing"])
		assert.Equal(t, "fr", v["language"])
	})

	t.Run("round trip keeps ids exact", func(t *testing.T) {
		v := Translated[Page]{Entity: page, Language: "de"}.View()
		b, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"id":7`)
	})
}

func TestTranslation_FieldAccess(t *testing.T) {
	var tr Translation
	tr.Set("location_name", String("Marienplatz"))
	tr.Set("unknown", String("ignored"))

	require.NotNil(t, tr.Get("location_name"))
	assert.Equal(t, "Marienplatz", *tr.Get("location_name"))
	assert.Nil(t, tr.Get("unknown"))
	assert.Equal(t, "locationName", JSONName("location_name"))
}

func TestJSONText(t *testing.T) {
	var j JSONText
	require.NoError(t, j.Scan([]byte(`{"mon":"9-17"}`)))
	out, err := json.Marshal(struct {
		Hours JSONText `json:"hours"`
	}{j})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hours":{"mon":"9-17"}}`, string(out))

	v, err := JSONText(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)
}
