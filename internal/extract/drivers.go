package extract

import (
	"f1-data-service/internal/assets"
	"f1-data-service/internal/countries"
	"f1-data-service/internal/doctree"
	"f1-data-service/internal/domain"
)

// Drivers extracts the season driver list. The document must contain at least
// one Driver element.
func Drivers(root *doctree.Node) ([]domain.Driver, error) {
	nodes := root.ElementsByTag("Driver")
	if len(nodes) == 0 {
		return nil, &StructuralError{Document: "drivers", Element: "Driver"}
	}

	drivers := make([]domain.Driver, 0, len(nodes))
	for _, node := range nodes {
		drivers = append(drivers, driverFromNode(node))
	}
	return drivers, nil
}

func driverFromNode(node *doctree.Node) domain.Driver {
	givenName := childText(node, "N/A", "GivenName", "givenName")
	familyName := childText(node, "N/A", "FamilyName", "familyName")
	nationality := childText(node, "Unknown", "Nationality", "nationality")
	countryCode := countries.CodeFor(nationality)
	nameCode := NameCode(givenName, familyName)
	override := driverOverrides[familyName]

	number := childText(node, "N/A", "PermanentNumber", "permanentNumber")
	if override.Number != "" {
		number = override.Number
	}

	return domain.Driver{
		DriverID:     attr(node, "N/A", "driverId"),
		Code:         attr(node, "N/A", "code"),
		GivenName:    givenName,
		FamilyName:   familyName,
		FullName:     givenName + " " + familyName,
		Nationality:  nationality,
		CountryCode:  countryCode,
		DriverNumber: number,
		DateOfBirth:  childText(node, "N/A", "DateOfBirth", "dateOfBirth"),
		WikipediaURL: attr(node, "N/A", "url"),

		FlagURL:         assets.FlagURL(countryCode),
		HelmetImage:     assets.HelmetImageURL(familyName),
		NumberImage:     assets.NumberImageURL(nameCode),
		ProfileImageURL: assets.ProfileImageURL(givenName, familyName, nameCode),
		ImageURL:        assets.DriverImageURL(familyName, override.TrimmedImage),
	}
}
