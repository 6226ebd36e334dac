package nobel

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lepinkainen/nobelfetch/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// curieAndAcmeFixture is a person with two prizes plus an organization:
// the pipeline must keep the person (one record, two prizes) and drop the org.
func curieAndAcmeFixture() LaureatesResponse {
	curie := personFixture("1", "Marie", "Curie", "1903")
	curie.NobelPrizes = append(curie.NobelPrizes, RawPrize{
		AwardYear: "1911",
		Category:  LocalizedString{En: "Chemistry"},
	})

	acme := RawLaureate{
		ID:      "2",
		OrgName: &LocalizedString{En: "Acme"},
		NobelPrizes: []RawPrize{
			{AwardYear: "1917", Category: LocalizedString{En: "Peace"}},
		},
	}

	return LaureatesResponse{Laureates: []RawLaureate{curie, acme}}
}

func TestFetchNobelWithParams_EndToEnd(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	var served bool
	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if served {
			require.NoError(t, json.NewEncoder(w).Encode(LaureatesResponse{}))
			return
		}
		served = true
		require.NoError(t, json.NewEncoder(w).Encode(curieAndAcmeFixture()))
	}))
	viper.Set("api.base_url", ts.URL)

	opts := Options{
		YearFrom:    1901,
		YearTo:      2024,
		JSON:        true,
		JSONOutput:  env.Path("json", "laureates.json"),
		Excel:       true,
		ExcelOutput: env.Path("excel", "laureates.xlsx"),
	}
	require.NoError(t, FetchNobelWithParams(opts))

	// JSON: exactly one record (Curie) with both prizes
	var records []Laureate
	require.NoError(t, json.Unmarshal(env.ReadFile(opts.JSONOutput), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Curie", records[0].FamilyName)
	require.Len(t, records[0].Prizes, 2)

	// Excel: header plus exactly two prize rows
	f, err := excelize.OpenFile(opts.ExcelOutput)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Nobel laureates 1901 - 2024")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFetchNobelWithParams_EmptyResultSkipsExport(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(LaureatesResponse{}))
	}))
	viper.Set("api.base_url", ts.URL)

	opts := Options{
		YearFrom:   2002,
		YearTo:     2024,
		JSON:       true,
		JSONOutput: env.Path("laureates.json"),
	}
	require.NoError(t, FetchNobelWithParams(opts))

	assert.False(t, env.FileExists("laureates.json"))
}

func TestFetchNobelWithParams_FetchFailureIsFatal(t *testing.T) {
	testutil.SetTestConfig(t)

	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	viper.Set("api.base_url", ts.URL)

	err := FetchNobelWithParams(Options{YearFrom: 2002, YearTo: 2024, JSON: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching laureates")
}
