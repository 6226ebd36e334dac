package nobel

import (
	"github.com/lepinkainen/nobelfetch/internal/cmdutil"
	"github.com/lepinkainen/nobelfetch/internal/errors"
	"github.com/spf13/viper"
)

func init() {
	registerWriter("sqlite", writeLaureatesToSQLite)
}

const nobelPrizesSchema = `CREATE TABLE IF NOT EXISTS nobel_prizes (
		given_name TEXT,
		family_name TEXT,
		gender TEXT,
		birth_date TEXT,
		wikipedia_link TEXT,
		category TEXT,
		status TEXT,
		motivation TEXT,
		award_year INTEGER
	)`

// prizeToMap flattens one laureate/prize pair into a database row
func prizeToMap(laureate Laureate, prize Prize) map[string]any {
	row := cmdutil.StructToMap(laureate, cmdutil.StructToMapOptions{
		OmitFields:   map[string]bool{"Prizes": true, "Email": true},
		KeyOverrides: map[string]string{"Wikipedia": "wikipedia_link"},
	})
	for key, value := range cmdutil.StructToMap(prize, cmdutil.StructToMapOptions{}) {
		row[key] = value
	}
	return row
}

func writeLaureatesToSQLite(laureates []Laureate, opts Options) error {
	var records []map[string]any
	for _, laureate := range laureates {
		for _, prize := range laureate.Prizes {
			records = append(records, prizeToMap(laureate, prize))
		}
	}

	if err := cmdutil.WriteToDatastore(records, nobelPrizesSchema, "nobel_prizes", "laureate prizes"); err != nil {
		return errors.NewExportError(viper.GetString("datasette.dbfile"), err)
	}
	return nil
}
