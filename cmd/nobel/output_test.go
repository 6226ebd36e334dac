package nobel

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/nobelfetch/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestPrizeToMap(t *testing.T) {
	laureate := sampleLaureates()[0]
	row := prizeToMap(laureate, laureate.Prizes[1])

	assert.Equal(t, "Marie", row["given_name"])
	assert.Equal(t, "Curie", row["family_name"])
	assert.Equal(t, "https://en.wikipedia.org/wiki/Marie_Curie", row["wikipedia_link"])
	assert.Equal(t, "Chemistry", row["category"])
	assert.Equal(t, 1911, row["award_year"])

	// Nested and export-only fields stay out of the row
	_, ok := row["prizes"]
	assert.False(t, ok)
	_, ok = row["email"]
	assert.False(t, ok)
}

func TestWriteLaureatesToSQLite(t *testing.T) {
	testutil.SetTestConfig(t)

	dbFile := filepath.Join(t.TempDir(), "nobel.db")
	viper.Set("datasette.mode", "local")
	viper.Set("datasette.dbfile", dbFile)

	require.NoError(t, writeLaureatesToSQLite(sampleLaureates(), Options{}))

	db, err := sql.Open("sqlite", dbFile)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// One row per prize
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM nobel_prizes").Scan(&count))
	assert.Equal(t, 3, count)

	var category string
	require.NoError(t, db.QueryRow(
		"SELECT category FROM nobel_prizes WHERE family_name = 'Einstein'").Scan(&category))
	assert.Equal(t, "Physics", category)
}
