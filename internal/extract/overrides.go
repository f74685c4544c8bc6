package extract

// Known upstream data quirks, collected in one place as literal overrides.
// Each entry works around a specific naming mismatch between the feed and the
// asset CDN or the current season; none of them is general logic.

// driverOverride adjusts a driver record keyed by exact family name.
type driverOverride struct {
	// Number replaces the permanent number with the displayed race number.
	// Verstappen runs the champion's number 1 while the feed keeps 33.
	Number string

	// TrimmedImage switches the full-body render to the CDN path without
	// the content/dam prefix, where some newer drivers are served.
	TrimmedImage bool
}

var driverOverrides = map[string]driverOverride{
	"Verstappen": {Number: "1"},
	"Doohan":     {TrimmedImage: true},
}

// constructorIDOverrides remaps feed constructor ids to the current season's
// asset naming.
var constructorIDOverrides = map[string]string{
	"sauber": "kick_sauber",
}

// assetCountryOverrides remaps country names for circuit image lookups only.
// The displayed location keeps the feed spelling.
var assetCountryOverrides = map[string]string{
	"UK": "great britain",
}

// AssetCountry returns the country name used to build circuit image
// candidates for the given feed country.
func AssetCountry(country string) string {
	if mapped, ok := assetCountryOverrides[country]; ok {
		return mapped
	}
	return country
}
