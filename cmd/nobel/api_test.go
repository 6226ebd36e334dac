package nobel

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lepinkainen/nobelfetch/internal/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personFixture(id, given, family string, years ...string) RawLaureate {
	laureate := RawLaureate{
		ID:         id,
		GivenName:  &LocalizedString{En: given},
		FamilyName: &LocalizedString{En: family},
		Gender:     "female",
	}
	for _, year := range years {
		laureate.NobelPrizes = append(laureate.NobelPrizes, RawPrize{
			AwardYear: year,
			Category:  LocalizedString{En: "Physics"},
		})
	}
	return laureate
}

func TestFetchLaureates_Paginates(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	pages := [][]RawLaureate{
		{personFixture("1", "Marie", "Curie", "1903"), personFixture("2", "Pierre", "Curie", "1903")},
		{personFixture("3", "Henri", "Becquerel", "1903")},
	}

	var gotOffsets []string
	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1901", r.URL.Query().Get("nobelPrizeYear"))
		assert.Equal(t, "2024", r.URL.Query().Get("yearTo"))
		gotOffsets = append(gotOffsets, r.URL.Query().Get("offset"))

		page := len(gotOffsets) - 1
		var laureates []RawLaureate
		if page < len(pages) {
			laureates = pages[page]
		}
		require.NoError(t, json.NewEncoder(w).Encode(LaureatesResponse{Laureates: laureates}))
	}))

	viper.Set("api.base_url", ts.URL)
	viper.Set("api.page_size", 2)

	laureates, err := FetchLaureates(context.Background(), 1901, 2024)
	require.NoError(t, err)

	assert.Len(t, laureates, 3)
	// Second page is short, so no third request is made
	assert.Equal(t, []string{"0", "2"}, gotOffsets)
}

func TestFetchLaureates_StopsOnEmptyPage(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	var requests int
	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.NoError(t, json.NewEncoder(w).Encode(LaureatesResponse{}))
	}))

	viper.Set("api.base_url", ts.URL)

	laureates, err := FetchLaureates(context.Background(), 2002, 2024)
	require.NoError(t, err)
	assert.Empty(t, laureates)
	assert.Equal(t, 1, requests)
}

func TestFetchLaureates_HTTPError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))

	viper.Set("api.base_url", ts.URL)

	_, err := FetchLaureates(context.Background(), 2002, 2024)
	require.Error(t, err)
	require.True(t, errors.IsFetchError(err))

	var fetchErr *errors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestFetchLaureates_MalformedJSON(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	ts := newIPv4TestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"laureates": [`))
	}))

	viper.Set("api.base_url", ts.URL)

	_, err := FetchLaureates(context.Background(), 2002, 2024)
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
