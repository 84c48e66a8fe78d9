package i18n

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

const maxSlugLength = 200

// Slugify transliterates s to ASCII and reduces it to lowercase words
// joined by '-'. "Über den Viktualienmarkt" becomes "uber-den-viktualienmarkt".
func Slugify(s string) string {
	ascii := strings.ToLower(unidecode.Unidecode(s))

	var b strings.Builder
	dash := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}
