package nobel

// LocalizedString is the Nobel API's per-language string object.
// Only the English value is used.
type LocalizedString struct {
	En string `json:"en"`
}

// RawBirth holds a laureate's birth information from the API
type RawBirth struct {
	Date string `json:"date"`
}

// RawWikipedia holds a laureate's Wikipedia references from the API
type RawWikipedia struct {
	Slug    string `json:"slug"`
	English string `json:"english"`
}

// RawPrize is one entry of a laureate's nobelPrizes array.
// The API delivers awardYear as a string.
type RawPrize struct {
	AwardYear   string          `json:"awardYear"`
	Category    LocalizedString `json:"category"`
	PrizeStatus string          `json:"prizeStatus"`
	Motivation  LocalizedString `json:"motivation"`
}

// RawLaureate is a laureate object as returned by the API.
// Organizations carry OrgName instead of Given/FamilyName.
type RawLaureate struct {
	ID          string           `json:"id"`
	KnownName   *LocalizedString `json:"knownName,omitempty"`
	GivenName   *LocalizedString `json:"givenName,omitempty"`
	FamilyName  *LocalizedString `json:"familyName,omitempty"`
	OrgName     *LocalizedString `json:"orgName,omitempty"`
	Gender      string           `json:"gender,omitempty"`
	Birth       *RawBirth        `json:"birth,omitempty"`
	Wikipedia   *RawWikipedia    `json:"wikipedia,omitempty"`
	NobelPrizes []RawPrize       `json:"nobelPrizes"`
}

// LaureatesResponse is the API's list envelope
type LaureatesResponse struct {
	Laureates []RawLaureate `json:"laureates"`
}

// Prize is one awarded prize in the normalized output
type Prize struct {
	Category   string `json:"category"`
	Status     string `json:"status"`
	Motivation string `json:"motivation"`
	AwardYear  int    `json:"award_year"`
}

// Laureate is the normalized output record: one natural person with all
// their prizes flattened into a single list. Missing optional fields are
// omitted from the JSON output rather than rendered as placeholders.
type Laureate struct {
	GivenName  string  `json:"given_name"`
	FamilyName string  `json:"family_name"`
	Gender     string  `json:"gender"`
	BirthDate  string  `json:"birth_date,omitempty"`
	Wikipedia  string  `json:"wikipedia_link,omitempty"`
	Email      string  `json:"email,omitempty"`
	Prizes     []Prize `json:"prizes"`
}
