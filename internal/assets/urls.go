// Package assets builds and verifies the remote image URLs attached to
// drivers, races, and constructors. The templates encode the upstream CDN's
// naming conventions and must stay literal; the cascade in resolver.go works
// around the known inconsistencies in circuit image naming.
package assets

import (
	"strings"

	"f1-data-service/internal/domain"
)

const (
	flagHost  = "https://flagsapi.com"
	mediaHost = "https://media.formula1.com"

	helmetPrefix       = mediaHost + "/image/upload/f_auto,c_limit,q_75,w_1024/content/dam/fom-website/manual/Helmets2024/"
	numberPrefix       = mediaHost + "/d_default_fallback_image.png/content/dam/fom-website/2018-redesign-assets/drivers/number-logos/"
	profilePrefix      = mediaHost + "/d_driver_fallback_image.png/content/dam/fom-website/drivers/"
	driverImagePrefix  = mediaHost + "/image/upload/f_auto,c_limit,q_auto,w_1320/content/dam/fom-website/drivers/2024Drivers/"
	driverImageTrimmed = mediaHost + "/image/upload/f_auto,c_limit,q_auto,w_1320/fom-website/drivers/2024Drivers/"
	circuitImagePrefix = mediaHost + "/image/upload/f_auto,c_limit,w_1440,q_auto/f_auto/q_auto/content/dam/fom-website/2018-redesign-assets/Racehub%20header%20images%2016x9/"
	teamLogoPrefix     = mediaHost + "/image/upload/f_auto,c_limit,q_75,w_1320/content/dam/fom-website/2018-redesign-assets/team%20logos/"
)

// FlagURL returns the flat flag rendering for a two-letter country code.
func FlagURL(countryCode string) string {
	return flagHost + "/" + countryCode + "/flat/64.png"
}

// FlagURLs returns both flag renderings for a two-letter country code.
func FlagURLs(countryCode string) domain.FlagURLs {
	return domain.FlagURLs{
		Flat:  flagHost + "/" + countryCode + "/flat/64.png",
		Shiny: flagHost + "/" + countryCode + "/shiny/64.png",
	}
}

// HelmetImageURL returns the current-season helmet render, keyed by family name.
func HelmetImageURL(familyName string) string {
	return helmetPrefix + familyName
}

// NumberImageURL returns the race-number badge, keyed by the driver name code.
func NumberImageURL(nameCode string) string {
	return numberPrefix + nameCode + "01.png"
}

// ProfileImageURL returns the head-shot render. The CDN path repeats the name
// code around an initial-letter directory.
func ProfileImageURL(givenName, familyName, nameCode string) string {
	initial := givenName
	if len(initial) > 1 {
		initial = initial[:1]
	}
	return profilePrefix + initial + "/" + nameCode + "01_" + givenName + "_" + familyName + "/" + nameCode + "01.png"
}

// DriverImageURL returns the full-body driver render. Some drivers are served
// from a path without the content/dam prefix; callers pass trimmed for those.
func DriverImageURL(familyName string, trimmed bool) string {
	if trimmed {
		return driverImageTrimmed + familyName
	}
	return driverImagePrefix + familyName
}

// TeamLogoURL returns the constructor logo, keyed by constructor id with
// underscores rendered as spaces.
func TeamLogoURL(constructorID string) string {
	return teamLogoPrefix + strings.ReplaceAll(constructorID, "_", " ")
}

// CircuitImageCandidates returns the cascade of circuit header image URLs in
// probe order: country with spaces as underscores, country with underscores
// as spaces, then the same two variants built from the locality.
func CircuitImageCandidates(country, locality string) []string {
	return []string{
		circuitImagePrefix + strings.ReplaceAll(country, " ", "_"),
		circuitImagePrefix + strings.ReplaceAll(country, "_", " "),
		circuitImagePrefix + strings.ReplaceAll(locality, " ", "_"),
		circuitImagePrefix + strings.ReplaceAll(locality, "_", " "),
	}
}
