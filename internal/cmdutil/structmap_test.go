package cmdutil

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

type testPrizeRow struct {
	GivenName  string
	FamilyName string
	AwardYear  int
	Wikipedia  *string

	hidden string
}

func TestStructToMap(t *testing.T) {
	link := "https://en.wikipedia.org/wiki/Marie_Curie"
	row := testPrizeRow{
		GivenName:  "Marie",
		FamilyName: "Curie",
		AwardYear:  1903,
		Wikipedia:  &link,
		hidden:     "ignored",
	}

	got := StructToMap(row, StructToMapOptions{})

	assert.Equal(t, "Marie", got["given_name"].(string))
	assert.Equal(t, "Curie", got["family_name"].(string))
	assert.Equal(t, 1903, got["award_year"].(int))
	assert.Equal(t, link, got["wikipedia"].(string))

	_, ok := got["hidden"]
	assert.False(t, ok)
}

func TestStructToMap_OmitAndOverride(t *testing.T) {
	row := testPrizeRow{GivenName: "Marie", FamilyName: "Curie"}

	got := StructToMap(row, StructToMapOptions{
		OmitFields:   map[string]bool{"AwardYear": true, "Wikipedia": true},
		KeyOverrides: map[string]string{"Wikipedia": "wikipedia_link"},
	})

	_, ok := got["award_year"]
	assert.False(t, ok)
	_, ok = got["wikipedia_link"]
	assert.False(t, ok)
	assert.Equal(t, "Marie", got["given_name"].(string))
}

func TestStructToMap_NilPointerField(t *testing.T) {
	got := StructToMap(testPrizeRow{GivenName: "Marie"}, StructToMapOptions{})
	v, ok := got["wikipedia"]
	assert.True(t, ok)
	assert.Equal(t, nil, v)
}

func TestStructToMap_NilPointerValue(t *testing.T) {
	var row *testPrizeRow
	got := StructToMap(row, StructToMapOptions{})
	assert.Equal(t, 0, len(got))
}
