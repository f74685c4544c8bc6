package domain

// Driver is the canonical driver shape exposed by the service.
// All fields are filled at extraction time; Enrichment stays nil until the
// aggregator resolves supplementary details for the driver.
type Driver struct {
	DriverID     string `json:"driverId"`
	Code         string `json:"driverCode"`
	GivenName    string `json:"givenName"`
	FamilyName   string `json:"familyName"`
	FullName     string `json:"fullName"`
	Nationality  string `json:"nationality"`
	CountryCode  string `json:"countryCode"`
	DriverNumber string `json:"driverNumber"`
	DateOfBirth  string `json:"dateOfBirth"`
	WikipediaURL string `json:"wikipediaUrl"`

	FlagURL         string `json:"flagUrl"`
	HelmetImage     string `json:"helmetImage"`
	NumberImage     string `json:"numberImage"`
	ProfileImageURL string `json:"profileImageUrl"`
	ImageURL        string `json:"imageUrl"`

	Enrichment *Enrichment `json:"additionalDetails,omitempty"`
}
