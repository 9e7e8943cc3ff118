package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessCurrencyCode(t *testing.T) {
	table := []Rule{
		{Code: "GBP", TZ: "Europe/London"},
		{Code: "EUR", TZ: "Europe/"},
		{Code: "USD", Locale: "US"},
		{Code: "CAD", Locale: "CA"},
	}

	tests := []struct {
		name    string
		tz      string
		locales []string
		want    string
		ok      bool
	}{
		{"timezone prefix", "Europe/Amsterdam", nil, "EUR", true},
		{"specific zone first", "Europe/London", []string{"en-US"}, "GBP", true},
		{"timezone beats locale", "Europe/Berlin", []string{"en-CA"}, "EUR", true},
		{"locale region", "Asia/Tokyo", []string{"en-US"}, "USD", true},
		{"first locale with region", "", []string{"fr", "en-CA", "en-US"}, "CAD", true},
		{"lowercase region", "", []string{"en-ca"}, "CAD", true},
		{"underscore separator", "", []string{"en_US"}, "USD", true},
		{"script subtag then region", "", []string{"zh-Hant-US"}, "USD", true},
		{"maximized from language", "", []string{"en"}, "USD", true},
		{"region without rule", "", []string{"de-DE"}, "", false},
		{"nothing", "", nil, "", false},
		{"garbage locale", "", []string{"!!"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GuessCurrencyCode(tt.tz, tt.locales, table)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuessCurrencyCode_EmptyTZRuleNeverMatches(t *testing.T) {
	table := []Rule{{Code: "XXX", TZ: ""}, {Code: "USD", Locale: "US"}}

	got, ok := GuessCurrencyCode("Europe/Paris", []string{"en-US"}, table)
	assert.True(t, ok)
	assert.Equal(t, "USD", got)
}

func TestRegion(t *testing.T) {
	r, ok := Region([]string{"pt-BR"})
	assert.True(t, ok)
	assert.Equal(t, "BR", r)

	r, ok = Region([]string{"es-419"})
	assert.True(t, ok)
	assert.Equal(t, "419", r)

	r, ok = Region([]string{"ja"})
	assert.True(t, ok)
	assert.Equal(t, "JP", r)

	_, ok = Region(nil)
	assert.False(t, ok)
}

func TestDefaultTable(t *testing.T) {
	tests := []struct {
		tz      string
		locales []string
		want    string
	}{
		{"Europe/Amsterdam", nil, "EUR"},
		{"Europe/London", nil, "GBP"},
		{"Europe/Zurich", nil, "CHF"},
		{"Australia/Sydney", nil, "AUD"},
		{"", []string{"en-US"}, "USD"},
		{"UTC", []string{"en-GB"}, "GBP"},
	}

	for _, tt := range tests {
		got, ok := GuessCurrencyCode(tt.tz, tt.locales, DefaultTable)
		assert.True(t, ok, tt.tz)
		assert.Equal(t, tt.want, got, tt.tz)
	}

	for i, r := range DefaultTable {
		assert.NotEmpty(t, r.Code, "rule %d", i)
		assert.True(t, r.TZ != "" || r.Locale != "", "rule %d", i)
	}
}
