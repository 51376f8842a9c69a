package market

import (
	"strings"
)

// Info describes the exchange a stock code belongs to, derived from its
// trailing market suffix.
type Info struct {
	Suffix   string
	Market   string
	BaseCode string
}

type suffixEntry struct {
	Suffix string
	Market string
}

// Ordered: first matching suffix wins.
var suffixes = []suffixEntry{
	{".HK", "Hong Kong"},
	{".KS", "Korea (KOSPI)"},
	{".KQ", "Korea (KOSDAQ)"},
	{".SS", "China (Shanghai)"},
	{".SH", "China (Shanghai)"},
	{".SZ", "China (Shenzhen)"},
	{".ZK", "China (Shenzhen)"},
	{".T", "Japan (Tokyo)"},
	{".TO", "Japan (Tokyo)"},
	{".AX", "Australia (ASX)"},
	{".BK", "Thailand (SET)"},
	{".TB", "Thailand (SET)"},
	{".KL", "Malaysia (KLSE)"},
	{".NS", "India (NSE)"},
	{".BO", "India (BSE)"},
	{".SI", "Singapore (SGX)"},
	{".TW", "Taiwan"},
	{".TWO", "Taiwan (OTC)"},
	{".JK", "Indonesia (IDX)"},
	{".PS", "Philippines (PSE)"},
	{".HN", "Vietnam (HNX)"},
	{".HP", "Vietnam (HOSE)"},
	{".US", "United States"},
	{".NASDAQ", "United States (NASDAQ)"},
	{".NYSE", "United States (NYSE)"},
}

var currencySymbols = map[string]string{
	"Hong Kong":              "HK$",
	"Korea (KOSPI)":          "₩",
	"Korea (KOSDAQ)":         "₩",
	"China (Shanghai)":       "¥",
	"China (Shenzhen)":       "¥",
	"Japan (Tokyo)":          "¥",
	"Australia (ASX)":        "A$",
	"Thailand (SET)":         "฿",
	"Malaysia (KLSE)":        "RM",
	"India (NSE)":            "₹",
	"India (BSE)":            "₹",
	"Singapore (SGX)":        "S$",
	"Taiwan":                 "NT$",
	"Taiwan (OTC)":           "NT$",
	"Indonesia (IDX)":        "Rp",
	"Philippines (PSE)":      "₱",
	"Vietnam (HNX)":          "₫",
	"Vietnam (HOSE)":         "₫",
	"United States":          "$",
	"United States (NASDAQ)": "$",
	"United States (NYSE)":   "$",
}

// marketNames maps market-name tokens found in free text to the suffixes
// that belong to that market. Used when a "stock code" turns out to be a
// market name instead.
var marketNames = []struct {
	Name     string
	Suffixes []string
}{
	{"hong kong", []string{".HK"}},
	{"korean", []string{".KS", ".KQ"}},
	{"korea", []string{".KS", ".KQ"}},
	{"kospi", []string{".KS"}},
	{"kosdaq", []string{".KQ"}},
	{"shanghai", []string{".SS", ".SH"}},
	{"shenzhen", []string{".SZ", ".ZK"}},
	{"chinese", []string{".SS", ".SH", ".SZ", ".ZK"}},
	{"china", []string{".SS", ".SH", ".SZ", ".ZK"}},
	{"japanese", []string{".T", ".TO"}},
	{"japan", []string{".T", ".TO"}},
	{"australian", []string{".AX"}},
	{"australia", []string{".AX"}},
	{"thailand", []string{".BK", ".TB"}},
	{"thai", []string{".BK", ".TB"}},
	{"malaysian", []string{".KL"}},
	{"malaysia", []string{".KL"}},
	{"indian", []string{".NS", ".BO"}},
	{"india", []string{".NS", ".BO"}},
	{"singapore", []string{".SI"}},
	{"taiwan", []string{".TW", ".TWO"}},
	{"indonesia", []string{".JK"}},
	{"philippines", []string{".PS"}},
	{"vietnam", []string{".HN", ".HP"}},
}

const unknownMarket = "Unknown Market"

// Normalize uppercases a stock code. Idempotent.
func Normalize(code string) string {
	return strings.ToUpper(code)
}

// Lookup resolves market info for a stock code. Codes with no known suffix
// resolve to "Unknown Market" with the suffix left empty.
func Lookup(code string) Info {
	upper := Normalize(code)
	for _, e := range suffixes {
		if strings.HasSuffix(upper, e.Suffix) {
			return Info{
				Suffix:   e.Suffix,
				Market:   e.Market,
				BaseCode: strings.TrimSuffix(upper, e.Suffix),
			}
		}
	}
	return Info{Suffix: "", Market: unknownMarket, BaseCode: upper}
}

// IsValidCode reports whether code looks like a tradable instrument: at
// least 3 characters and either carrying a known market suffix or purely
// numeric (bare local codes).
func IsValidCode(code string) bool {
	if len(code) < 3 {
		return false
	}
	upper := Normalize(code)
	for _, e := range suffixes {
		if strings.HasSuffix(upper, e.Suffix) {
			return true
		}
	}
	return isNumeric(code)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CurrencySymbol returns the display currency for a market label, "$" when
// the market is unknown.
func CurrencySymbol(marketLabel string) string {
	if sym, ok := currencySymbols[marketLabel]; ok {
		return sym
	}
	return "$"
}

// SuffixesForMarketName scans free text for a market-name token and returns
// the matching market name and its suffixes. ok is false when no token
// matches.
func SuffixesForMarketName(text string) (name string, sfx []string, ok bool) {
	lower := strings.ToLower(text)
	for _, m := range marketNames {
		if strings.Contains(lower, m.Name) {
			return m.Name, m.Suffixes, true
		}
	}
	return "", nil, false
}

// KnownSuffixes returns the suffix tokens without the leading dot, in table
// order. Used to build code-extraction patterns.
func KnownSuffixes() []string {
	out := make([]string, 0, len(suffixes))
	for _, e := range suffixes {
		out = append(out, strings.TrimPrefix(e.Suffix, "."))
	}
	return out
}
