// Package locale guesses a default currency from the user's timezone and
// preferred locales. The guess is a weak preference; it never validates
// against the cached currency list.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Rule maps a timezone fragment or a country code to a currency code.
// A rule carries TZ, Locale, or both.
type Rule struct {
	Code string
	// TZ matches when it is a substring of the resolved timezone.
	TZ string
	// Locale matches a derived country code exactly, e.g. "US".
	Locale string
}

// GuessCurrencyCode returns the currency code of the first rule matching tz,
// then of the first rule matching the country derived from locales.
// It reports false when nothing matched.
func GuessCurrencyCode(tz string, locales []string, table []Rule) (string, bool) {
	if tz != "" {
		for _, r := range table {
			if r.TZ != "" && strings.Contains(tz, r.TZ) {
				return r.Code, true
			}
		}
	}

	country, ok := Region(locales)
	if !ok {
		return "", false
	}
	for _, r := range table {
		if r.Locale != "" && r.Locale == country {
			return r.Code, true
		}
	}
	return "", false
}

// Region derives a country code from an ordered list of locale tags. The
// first tag whose last subtag is a region wins. Otherwise the likely region
// of the first tag is used, so "en" yields "US".
func Region(locales []string) (string, bool) {
	for _, l := range locales {
		if region, ok := explicitRegion(l); ok {
			return region, true
		}
	}
	if len(locales) == 0 {
		return "", false
	}

	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locales[0]), "_", "-"))
	if err != nil {
		return "", false
	}
	region, conf := tag.Region()
	if conf == language.No {
		return "", false
	}
	code := region.String()
	if code == "ZZ" {
		return "", false
	}
	return code, true
}

func explicitRegion(tag string) (string, bool) {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	i := strings.LastIndex(tag, "-")
	if i < 0 {
		return "", false
	}
	sub := tag[i+1:]
	if !isRegionSubtag(sub) {
		return "", false
	}
	return strings.ToUpper(sub), true
}

// isRegionSubtag accepts two letters or three digits.
func isRegionSubtag(s string) bool {
	switch len(s) {
	case 2:
		return isLetter(s[0]) && isLetter(s[1])
	case 3:
		return isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2])
	}
	return false
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
