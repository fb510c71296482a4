package geo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var regionNamer = display.English.Regions()

// CountryName returns the English name for an ISO 3166-1 alpha-2 code,
// or the code itself when it is not recognised.
func CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := regionNamer.Name(region); name != "" {
		return name
	}
	return code
}
