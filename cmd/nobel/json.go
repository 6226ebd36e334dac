package nobel

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/nobelfetch/internal/cmdutil"
	"github.com/lepinkainen/nobelfetch/internal/config"
	"github.com/lepinkainen/nobelfetch/internal/errors"
	"github.com/lepinkainen/nobelfetch/internal/fileutil"
)

func init() {
	registerWriter("json", writeLaureatesToJSON)
}

func writeLaureatesToJSON(laureates []Laureate, opts Options) error {
	output := cmdutil.ResolveOutputPath(opts.JSONOutput, "JSONOutputDir", "json", "laureates.json")

	records := laureates
	if config.EmailSuffix != "" {
		records = addEmails(laureates, config.EmailSuffix)
	}

	if _, err := fileutil.WriteJSONFile(records, output, config.OverwriteFiles); err != nil {
		return errors.NewExportError(output, err)
	}
	return nil
}

// addEmails returns a copy of the records with a derived contact address
// per laureate (given.family@suffix, lowercased, spaces stripped). Only the
// JSON export carries this field.
func addEmails(laureates []Laureate, suffix string) []Laureate {
	enriched := make([]Laureate, len(laureates))
	for i, laureate := range laureates {
		laureate.Email = fmt.Sprintf("%s.%s@%s",
			emailToken(laureate.GivenName),
			emailToken(laureate.FamilyName),
			suffix)
		enriched[i] = laureate
	}
	return enriched
}

func emailToken(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
