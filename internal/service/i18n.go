package service

import (
	"strings"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/alexivanou/cityportal-api/internal/i18n"
	"github.com/alexivanou/cityportal-api/internal/model"
)

// I18nService exposes the configured languages and the UI string catalogue.
type I18nService struct {
	languages *i18n.Resolver
	catalog   i18n.Catalog
}

func (s *I18nService) Languages() []i18n.Language {
	return s.languages.Languages()
}

func (s *I18nService) Default() string {
	return s.languages.Default()
}

// Translations returns the UI strings for lang. A supported language without
// its own catalogue is served the default language's strings, then English.
func (s *I18nService) Translations(lang string) (*model.UITranslationsResponse, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !s.languages.IsSupported(lang) {
		return nil, apperror.NotFound("language %q is not supported", lang)
	}
	messages, served := s.catalog.Lookup(lang, s.languages.Default(), "en")
	if served == "" {
		return nil, apperror.NotFound("no UI translations for %q", lang)
	}
	return &model.UITranslationsResponse{Language: served, Data: messages}, nil
}
