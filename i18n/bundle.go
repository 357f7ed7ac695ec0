package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrUnknownLanguage is returned when a fallback language has no catalog.
var ErrUnknownLanguage = errors.New("i18n: unknown language")

// Bundle selects a catalog for a client language preference. Regional
// variants resolve to their base language (vi-VN -> vi, en-US -> en).
type Bundle struct {
	catalogs []*Catalog
	fallback *Catalog
	matcher  language.Matcher
}

// NewBundle builds a bundle from catalogs. fallback names the language used
// when nothing matches; it must be one of the catalogs.
func NewBundle(fallback string, catalogs ...*Catalog) (*Bundle, error) {
	if len(catalogs) == 0 {
		catalogs = []*Catalog{English(), Vietnamese()}
	}
	// The fallback goes first: the matcher returns index 0 when nothing matches.
	ordered := make([]*Catalog, 0, len(catalogs))
	var fb *Catalog
	for _, c := range catalogs {
		if c.lang == fallback {
			fb = c
			continue
		}
		ordered = append(ordered, c)
	}
	if fb == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, fallback)
	}
	ordered = append([]*Catalog{fb}, ordered...)
	tags := make([]language.Tag, len(ordered))
	for i, c := range ordered {
		tags[i] = language.Make(c.lang)
	}
	return &Bundle{catalogs: ordered, fallback: fb, matcher: language.NewMatcher(tags)}, nil
}

// MustBundle is like NewBundle but panics on error.
func MustBundle(fallback string, catalogs ...*Catalog) *Bundle {
	b, err := NewBundle(fallback, catalogs...)
	if err != nil {
		panic(err)
	}
	return b
}

// Fallback returns the fallback catalog.
func (b *Bundle) Fallback() *Catalog { return b.fallback }

// Lookup picks the best catalog for the given preferences. Each preference
// may be a single tag ("vi") or a full Accept-Language header value; the
// first non-empty preference that parses wins.
func (b *Bundle) Lookup(prefs ...string) *Catalog {
	for _, p := range prefs {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := b.matcher.Match(tags...)
		if conf == language.No {
			continue
		}
		return b.catalogs[idx]
	}
	return b.fallback
}
