package seeder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixtures = `
districts:
  - slug: schwabing
    centerLat: 48.16
    translations:
      de: {name: Schwabing}
      ja: {name: シュヴァービング}
categories:
  - slug: gastronomie
    translations:
      de: {name: Gastronomie}
  - slug: cafes
    parent: gastronomie
    translations:
      de: {name: Cafés}
pages:
  - slug: start
    status: published
    translations:
      de: {title: Start, meta_title: Willkommen}
      en: {title: Home}
  - slug: kontakt
    parent: start
    translations:
      de: {title: Kontakt}
events:
  - startsIn: 48h
    duration: 2h
    translations:
      de: {title: Stadtfest}
businesses:
  - category: cafes
    address: Leopoldstr. 1
    postalCode: "80802"
    translations:
      de: {name: Café Leo}
`

func TestParser_Parse(t *testing.T) {
	f, err := NewParser([]string{"de", "en"}).Parse(strings.NewReader(sampleFixtures))
	require.NoError(t, err)

	assert.Equal(t, 7, f.Count())
	require.Len(t, f.Districts, 1)
	assert.InDelta(t, 48.16, *f.Districts[0].CenterLat, 0.0001)
	assert.NotContains(t, f.Districts[0].Translations, "ja", "unsupported languages are dropped")

	assert.Equal(t, "gastronomie", f.Categories[1].Parent)
	assert.Equal(t, "start", f.Pages[1].Parent)
	assert.Equal(t, "48h", f.Events[0].StartsIn)
	assert.Equal(t, "80802", f.Businesses[0].PostalCode)

	tr, err := f.Pages[0].Translations.Translations()
	require.NoError(t, err)
	assert.Equal(t, "Willkommen", *tr["de"].MetaTitle)
	assert.Equal(t, "Home", *tr["en"].Title)
}

func TestParser_ParseEmpty(t *testing.T) {
	f, err := NewParser(nil).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Count())
}

func TestParser_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "unknown key",
			input:   "pages:\n  - slug: a\n    colour: red\n",
			wantErr: "colour",
		},
		{
			name:    "parent listed after child",
			input:   "pages:\n  - slug: child\n    parent: root\n  - slug: root\n",
			wantErr: `parent "root" must be listed before it`,
		},
		{
			name:    "duplicate page slug",
			input:   "pages:\n  - slug: a\n  - slug: a\n",
			wantErr: `duplicate page slug "a"`,
		},
		{
			name:    "business with unknown category",
			input:   "businesses:\n  - category: nope\n",
			wantErr: `unknown category "nope"`,
		},
		{
			name:    "poi with unknown district",
			input:   "pois:\n  - district: nowhere\n",
			wantErr: `unknown district "nowhere"`,
		},
		{
			name:    "event without start",
			input:   "events:\n  - status: published\n",
			wantErr: "start or startsIn is required",
		},
		{
			name:    "duplicate district slug",
			input:   "districts:\n  - slug: x\n  - slug: x\n",
			wantErr: `duplicate district slug "x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(nil).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTexts_UnknownField(t *testing.T) {
	_, err := Texts{"de": {"subtitle": "x"}}.Translations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtitle")
}

func TestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFixtures), 0644))

	f, err := NewParser([]string{"de"}).ParseFile(path)
	require.NoError(t, err)
	assert.NotContains(t, f.Pages[0].Translations, "en")

	_, err = NewParser(nil).ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParser_BundledFixtures(t *testing.T) {
	f, err := NewParser([]string{"de", "en"}).ParseFile("../../fixtures/munich.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, f.Districts)
	assert.NotEmpty(t, f.Accommodations)
}
