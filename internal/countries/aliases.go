package countries

// DefaultAliases maps alternate spellings used by data sources to a
// canonical country code.
func DefaultAliases() map[string]string {
	out := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		out[k] = v
	}
	return out
}

// DefaultBlocs maps multi-country labels to their member codes.
func DefaultBlocs() map[string][]string {
	out := make(map[string][]string, len(defaultBlocs))
	for k, v := range defaultBlocs {
		out[k] = append([]string(nil), v...)
	}
	return out
}

var defaultAliases = map[string]string{
	"Republic of Palau":  "PW",
	"Czech Republic":     "CZ",
	"Macau":              "MO",
	"Russian Federation": "RU",
	"Cape Verde":         "CV",
	"United States":      "US",
	"Ivory Coast":        "CI",
	"Swaziland":          "SZ",
	"East Timor":         "TL",
	"Guinea Bissau":      "GW",
	"Macedonia":          "MK",

	// ISO 3166 official short names that differ from the display names.
	"Iran, Islamic Republic of":              "IR",
	"Lao People's Democratic Republic":       "LA",
	"Curaçao":                                "CW",
	"Viet Nam":                               "VN",
	"Côte d'Ivoire":                          "CI",
	"Türkiye":                                "TR",
	"Korea, Democratic People's Republic of": "KP",
	"Korea, Republic of":                     "KR",
	"Tanzania, United Republic of":           "TZ",
	"Bolivia, Plurinational State of":        "BO",
	"Bonaire, Sint Eustatius and Saba":       "BQ",
	"Micronesia, Federated States of":        "FM",
	"Moldova, Republic of":                   "MD",
	"Venezuela, Bolivarian Republic of":      "VE",
	"Virgin Islands, British":                "VG",
	"Virgin Islands, U.S.":                   "VI",
	"Congo, Democratic Republic of the":      "CD",
	"Brunei Darussalam":                      "BN",
	"Syrian Arab Republic":                   "SY",
	"Taiwan, Province of China":              "TW",

	"United Kingdom of Great Britain and Northern Ireland": "GB",

	"Saint Helena, Ascension and Tristan da Cunha": "SH",

	// Spellings seen on tradingeconomics.com country lists.
	"Republic of the Congo": "CG",
	"Palestine":             "PS",
	"Hong Kong SAR":         "HK",
	"The Gambia":            "GM",
	"Antigua":               "AG",
	"Bahamas, The":          "BS",
}

var defaultBlocs = map[string][]string{
	"Euro Area": {
		"AT", "BE", "HR", "CY", "EE", "FI", "FR", "DE", "GR", "IE",
		"IT", "LV", "LT", "LU", "MT", "NL", "PT", "SK", "SI", "ES",
	},
	"Eastern Caribbean Economic and Currency Union (OECS/ECCU)": {
		"AI", "AG", "DM", "GD", "MS", "KN", "LC", "VC",
	},

	// Cross-border CBDC projects reported as a single entry.
	"France & Switzerland":               {"FR", "CH"},
	"France & Singapore":                 {"FR", "SG"},
	"France & Tunisia":                   {"FR", "TN"},
	"Hong Kong, Thailand, China and UAE": {"HK", "TH", "CN", "AE"},
	"Israel & Norway & Sweden":           {"IL", "NO", "SE"},
	"Israel, Hong Kong":                  {"IL", "HK"},
}
