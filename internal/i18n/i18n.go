package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Resolver picks the effective language of a request.
type Resolver struct {
	supported map[string]bool
	codes     []string
	fallback  string
}

// NewResolver creates a resolver over the configured languages. def must be
// one of supported; config.Load guarantees it.
func NewResolver(supported []string, def string) *Resolver {
	r := &Resolver{supported: make(map[string]bool, len(supported)), fallback: def}
	for _, code := range supported {
		code = strings.ToLower(code)
		r.supported[code] = true
		r.codes = append(r.codes, code)
	}
	return r
}

// Default returns the configured default language.
func (r *Resolver) Default() string {
	return r.fallback
}

// Supported returns the configured languages in configuration order.
func (r *Resolver) Supported() []string {
	return append([]string(nil), r.codes...)
}

// IsSupported reports whether code is a configured language.
func (r *Resolver) IsSupported(code string) bool {
	return r.supported[strings.ToLower(code)]
}

// Resolve applies query › header › cookie › default; the first supported
// candidate wins. Only the first tag listed in the header is considered,
// whatever its quality value.
func (r *Resolver) Resolve(query, header, cookie string) string {
	if code, ok := r.match(query); ok {
		return code
	}
	if code, ok := r.matchHeader(header); ok {
		return code
	}
	if code, ok := r.match(cookie); ok {
		return code
	}
	return r.fallback
}

func (r *Resolver) matchHeader(header string) (string, bool) {
	first := strings.SplitN(header, ",", 2)[0]
	first = strings.SplitN(first, ";", 2)[0]
	return r.match(first)
}

// match accepts an exact configured code ("zh-hans") or a tag whose base
// language is configured ("en-GB" → "en").
func (r *Resolver) match(raw string) (string, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", false
	}
	if r.supported[raw] {
		return raw, true
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	return r.matchTag(tag)
}

func (r *Resolver) matchTag(tag language.Tag) (string, bool) {
	if full := strings.ToLower(tag.String()); r.supported[full] {
		return full, true
	}
	base, _ := tag.Base()
	if code := base.String(); r.supported[code] {
		return code, true
	}
	return "", false
}

// Language describes one configured language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Direction  string `json:"direction"`
	IsDefault  bool   `json:"isDefault"`
}

var rtlScripts = map[string]bool{"Arab": true, "Hebr": true, "Thaa": true, "Syrc": true}

// Languages returns metadata for every configured language.
func (r *Resolver) Languages() []Language {
	english := display.English.Tags()
	out := make([]Language, 0, len(r.codes))
	for _, code := range r.codes {
		l := Language{Code: code, Name: code, NativeName: code, Direction: "ltr", IsDefault: code == r.fallback}
		if tag, err := language.Parse(code); err == nil {
			if n := english.Name(tag); n != "" {
				l.Name = n
			}
			if n := display.Self.Name(tag); n != "" {
				l.NativeName = n
			}
			if script, _ := tag.Script(); rtlScripts[script.String()] {
				l.Direction = "rtl"
			}
		}
		out = append(out, l)
	}
	return out
}

type ctxKey struct{}

// WithLanguage stores the effective language in ctx.
func WithLanguage(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ctxKey{}, code)
}

// FromContext returns the language stored by WithLanguage, or "".
func FromContext(ctx context.Context) string {
	code, _ := ctx.Value(ctxKey{}).(string)
	return code
}
