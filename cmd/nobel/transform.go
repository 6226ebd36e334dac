package nobel

import (
	"log/slog"
	"strconv"

	"github.com/lepinkainen/nobelfetch/internal/errors"
)

// TransformLaureates converts raw API entries into normalized records.
// Organizations are dropped, prizes are flattened in source order and
// filtered to the [yearFrom, yearTo] range. Malformed entries are logged
// once and skipped; they never abort the run.
func TransformLaureates(raw []RawLaureate, yearFrom, yearTo int) []Laureate {
	var laureates []Laureate

	for _, entry := range raw {
		if entry.OrgName != nil {
			slog.Debug("Skipping organization", "name", entry.OrgName.En)
			continue
		}

		laureate, err := transformLaureate(entry, yearFrom, yearTo)
		if err != nil {
			slog.Warn("Skipping laureate record", "id", entry.ID, "error", err)
			continue
		}
		if len(laureate.Prizes) == 0 {
			slog.Debug("Dropping laureate with no prizes in range", "id", entry.ID)
			continue
		}

		laureates = append(laureates, laureate)
	}

	return laureates
}

// transformLaureate builds one output record from a raw person entry.
// Returns a MalformedRecordError when both name fields are missing.
func transformLaureate(entry RawLaureate, yearFrom, yearTo int) (Laureate, error) {
	givenName := localized(entry.GivenName)
	familyName := localized(entry.FamilyName)
	if givenName == "" && familyName == "" {
		return Laureate{}, errors.NewMalformedRecordError("both given and family name are missing")
	}

	laureate := Laureate{
		GivenName:  givenName,
		FamilyName: familyName,
		Gender:     normalizeGender(entry.Gender),
	}
	if entry.Birth != nil {
		laureate.BirthDate = entry.Birth.Date
	}
	if entry.Wikipedia != nil {
		laureate.Wikipedia = entry.Wikipedia.English
	}

	for _, rawPrize := range entry.NobelPrizes {
		year, err := strconv.Atoi(rawPrize.AwardYear)
		if err != nil {
			slog.Warn("Skipping prize with unparseable award year", "id", entry.ID, "awardYear", rawPrize.AwardYear)
			continue
		}
		if year < yearFrom || year > yearTo {
			slog.Debug("Skipping prize outside configured range", "id", entry.ID, "awardYear", year)
			continue
		}

		laureate.Prizes = append(laureate.Prizes, Prize{
			Category:   rawPrize.Category.En,
			Status:     rawPrize.PrizeStatus,
			Motivation: rawPrize.Motivation.En,
			AwardYear:  year,
		})
	}

	return laureate, nil
}

func localized(s *LocalizedString) string {
	if s == nil {
		return ""
	}
	return s.En
}

func normalizeGender(gender string) string {
	switch gender {
	case "male", "female":
		return gender
	default:
		return "unknown"
	}
}
