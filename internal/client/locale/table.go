package locale

// DefaultTable is scanned in order. Specific European zones precede the
// catch-all "Europe/" rule.
var DefaultTable = []Rule{
	{Code: "GBP", TZ: "Europe/London"},
	{Code: "GBP", TZ: "Europe/Belfast"},
	{Code: "CHF", TZ: "Europe/Zurich"},
	{Code: "SEK", TZ: "Europe/Stockholm"},
	{Code: "NOK", TZ: "Europe/Oslo"},
	{Code: "DKK", TZ: "Europe/Copenhagen"},
	{Code: "PLN", TZ: "Europe/Warsaw"},
	{Code: "CZK", TZ: "Europe/Prague"},
	{Code: "HUF", TZ: "Europe/Budapest"},
	{Code: "TRY", TZ: "Europe/Istanbul"},
	{Code: "UAH", TZ: "Europe/Kyiv"},
	{Code: "UAH", TZ: "Europe/Kiev"},
	{Code: "EUR", TZ: "Europe/"},

	{Code: "JPY", TZ: "Asia/Tokyo"},
	{Code: "CNY", TZ: "Asia/Shanghai"},
	{Code: "HKD", TZ: "Asia/Hong_Kong"},
	{Code: "SGD", TZ: "Asia/Singapore"},
	{Code: "INR", TZ: "Asia/Kolkata"},
	{Code: "KRW", TZ: "Asia/Seoul"},
	{Code: "AED", TZ: "Asia/Dubai"},
	{Code: "ILS", TZ: "Asia/Jerusalem"},
	{Code: "AUD", TZ: "Australia/"},
	{Code: "NZD", TZ: "Pacific/Auckland"},

	{Code: "CAD", TZ: "America/Toronto"},
	{Code: "CAD", TZ: "America/Vancouver"},
	{Code: "MXN", TZ: "America/Mexico_City"},
	{Code: "BRL", TZ: "America/Sao_Paulo"},
	{Code: "ARS", TZ: "America/Argentina/"},
	{Code: "USD", TZ: "America/New_York"},
	{Code: "USD", TZ: "America/Chicago"},
	{Code: "USD", TZ: "America/Denver"},
	{Code: "USD", TZ: "America/Los_Angeles"},
	{Code: "ZAR", TZ: "Africa/Johannesburg"},

	{Code: "USD", Locale: "US"},
	{Code: "CAD", Locale: "CA"},
	{Code: "GBP", Locale: "GB"},
	{Code: "CHF", Locale: "CH"},
	{Code: "SEK", Locale: "SE"},
	{Code: "NOK", Locale: "NO"},
	{Code: "DKK", Locale: "DK"},
	{Code: "PLN", Locale: "PL"},
	{Code: "CZK", Locale: "CZ"},
	{Code: "UAH", Locale: "UA"},
	{Code: "EUR", Locale: "DE"},
	{Code: "EUR", Locale: "FR"},
	{Code: "EUR", Locale: "NL"},
	{Code: "EUR", Locale: "ES"},
	{Code: "EUR", Locale: "IT"},
	{Code: "EUR", Locale: "AT"},
	{Code: "EUR", Locale: "BE"},
	{Code: "EUR", Locale: "IE"},
	{Code: "EUR", Locale: "PT"},
	{Code: "EUR", Locale: "FI"},
	{Code: "EUR", Locale: "LV"},
	{Code: "EUR", Locale: "LT"},
	{Code: "EUR", Locale: "EE"},
	{Code: "JPY", Locale: "JP"},
	{Code: "CNY", Locale: "CN"},
	{Code: "INR", Locale: "IN"},
	{Code: "AUD", Locale: "AU"},
	{Code: "NZD", Locale: "NZ"},
	{Code: "BRL", Locale: "BR"},
	{Code: "MXN", Locale: "MX"},
}
