package demo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xtrillion/minerva-site/internal/mcp"
)

// Source selects which data service answers a query.
type Source int

const (
	// SourceNone means no keyword or country matched; the engine answers
	// with the help text.
	SourceNone Source = iota
	// SourceFRED is the domestic time-series path.
	SourceFRED
	// SourceIMF is the international summary-indicator path.
	SourceIMF
)

// Transform is applied to a fetched series before charting.
type Transform string

const (
	TransformLevel Transform = "level"
	TransformYoY   Transform = "yoy"
)

// Resolution is what the resolver derives from a raw query: which source to
// call, with what key, and how to present the result.
type Resolution struct {
	Source      Source
	SeriesID    string // FRED series, when Source is SourceFRED
	Tool        string // IMF tool name, when Source is SourceIMF
	CountryName string
	CountryCode string
	Title       string
	YLabel      string
	Transform   Transform
}

const domesticCode = "USA"

type countryEntry struct {
	name string
	code string
}

// countryCodes maps country-name substrings to ISO codes. Matching is
// first-wins in declaration order, so the order here is load-bearing: the
// domestic aliases sit last, and short names like "us" can be shadowed by
// earlier entries that contain them ("australia").
var countryCodes = []countryEntry{
	{"france", "FRA"}, {"germany", "DEU"}, {"uk", "GBR"}, {"britain", "GBR"},
	{"japan", "JPN"}, {"china", "CHN"}, {"india", "IND"}, {"brazil", "BRA"},
	{"mexico", "MEX"}, {"canada", "CAN"}, {"australia", "AUS"}, {"italy", "ITA"},
	{"spain", "ESP"}, {"argentina", "ARG"}, {"russia", "RUS"}, {"korea", "KOR"},
	{"indonesia", "IDN"}, {"turkey", "TUR"}, {"saudi", "SAU"}, {"south africa", "ZAF"},
	{"nigeria", "NGA"}, {"egypt", "EGY"}, {"poland", "POL"}, {"netherlands", "NLD"},
	{"belgium", "BEL"}, {"sweden", "SWE"}, {"norway", "NOR"}, {"switzerland", "CHE"},
	{"austria", "AUT"}, {"greece", "GRC"}, {"portugal", "PRT"}, {"ireland", "IRL"},
	{"denmark", "DNK"}, {"finland", "FIN"}, {"czech", "CZE"}, {"hungary", "HUN"},
	{"romania", "ROU"}, {"ukraine", "UKR"}, {"vietnam", "VNM"}, {"thailand", "THA"},
	{"malaysia", "MYS"}, {"singapore", "SGP"}, {"philippines", "PHL"}, {"pakistan", "PAK"},
	{"bangladesh", "BGD"}, {"chile", "CHL"}, {"colombia", "COL"}, {"peru", "PER"},
	{"venezuela", "VEN"}, {"israel", "ISR"}, {"uae", "ARE"}, {"qatar", "QAT"},
	{"kuwait", "KWT"}, {"kazakhstan", "KAZ"}, {"united states", "USA"}, {"us", "USA"},
	{"usa", "USA"}, {"america", "USA"},
}

type fredMapping struct {
	keyword   string
	seriesID  string
	title     string
	yLabel    string
	transform Transform
}

// fredMappings maps query keywords to FRED series. First matching keyword
// wins, in declaration order.
var fredMappings = []fredMapping{
	{"inflation", "CPIAUCSL", "US Inflation Rate (YoY)", "Percent", TransformYoY},
	{"us inflation", "CPIAUCSL", "US Inflation Rate (YoY)", "Percent", TransformYoY},
	{"cpi", "CPIAUCSL", "US Consumer Price Index", "Index", TransformLevel},
	{"unemployment", "UNRATE", "US Unemployment Rate", "Percent", TransformLevel},
	{"gdp", "GDP", "US Gross Domestic Product", "Billions of Dollars", TransformLevel},
	{"us gdp", "GDP", "US Gross Domestic Product", "Billions of Dollars", TransformLevel},
	{"fed funds", "FEDFUNDS", "Federal Funds Rate", "Percent", TransformLevel},
	{"interest rate", "FEDFUNDS", "Federal Funds Rate", "Percent", TransformLevel},
	{"10 year", "DGS10", "10-Year Treasury Rate", "Percent", TransformLevel},
	{"treasury", "DGS10", "10-Year Treasury Rate", "Percent", TransformLevel},
}

var titleCaser = cases.Title(language.English)

// detectCountry returns the display name and ISO code of the first country
// whose name appears in the query.
func detectCountry(queryLower string) (string, string, bool) {
	for _, entry := range countryCodes {
		if strings.Contains(queryLower, entry.name) {
			return titleCaser.String(entry.name), entry.code, true
		}
	}
	return "", "", false
}

// detectIndicator picks the IMF tool for an international query. GDP growth
// is the default when no indicator keyword matches.
func detectIndicator(queryLower string) (tool, title, yLabel string) {
	switch {
	case strings.Contains(queryLower, "inflation"),
		strings.Contains(queryLower, "cpi"),
		strings.Contains(queryLower, "price"):
		return mcp.IMFToolInflation, "Inflation Rate", "Percent"
	case strings.Contains(queryLower, "unemployment"),
		strings.Contains(queryLower, "jobless"):
		return mcp.IMFToolUnemployment, "Unemployment Rate", "Percent"
	case strings.Contains(queryLower, "current account"),
		strings.Contains(queryLower, "trade balance"):
		return mcp.IMFToolCurrentAccount, "Current Account Balance", "% of GDP"
	default:
		return mcp.IMFToolGDP, "Real GDP Growth", "Percent"
	}
}

// Resolve maps a free-text query to a data source, key, and presentation.
// A match on the domestic code routes to FRED; no match at all yields a
// SourceNone resolution that the engine turns into the help response.
func Resolve(query string) Resolution {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	if name, code, ok := detectCountry(queryLower); ok && code != domesticCode {
		tool, title, yLabel := detectIndicator(queryLower)
		return Resolution{
			Source:      SourceIMF,
			Tool:        tool,
			CountryName: name,
			CountryCode: code,
			Title:       title,
			YLabel:      yLabel,
		}
	}

	for _, m := range fredMappings {
		if strings.Contains(queryLower, m.keyword) {
			return Resolution{
				Source:    SourceFRED,
				SeriesID:  m.seriesID,
				Title:     m.title,
				YLabel:    m.yLabel,
				Transform: m.transform,
			}
		}
	}

	return Resolution{Source: SourceNone}
}
