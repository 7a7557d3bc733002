package election

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"australia-analytics/internal/domain"
)

func TestNormaliseParty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Australian Labor Party", "Australian Labor Party"},
		{"Labor", "Australian Labor Party"},
		{"Liberal National Party of Queensland", "Liberal National Party of Queensland"},
		{"Liberal", "Liberal Party of Australia"},
		{"The Nationals", "National Party of Australia"},
		{"Queensland Greens", "Australian Greens"},
		{"Katter's Australian Party (KAP)", "Katter's Australian Party"},
		{"Centre Alliance", "Centre Alliance"},
		{"Country Liberals (NT)", "Liberal Party of Australia"},
		{"Trumpet of Patriots", "Trumpet of Patriots"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormaliseParty(tt.in))
		})
	}
}

func TestColours(t *testing.T) {
	assert.Equal(t, "#DE3533", PartyColour("Australian Labor Party"))
	assert.Equal(t, DefaultColour, PartyColour("Trumpet of Patriots"))
	assert.Equal(t, "teal", AbbrevColour("IND"))
	assert.Equal(t, DefaultColour, AbbrevColour("ON"))

	colours := PartyColours()
	colours["Independent"] = "black"
	assert.Equal(t, "teal", PartyColour("Independent"))
}

func sampleResults() []*domain.DivisionResult {
	return []*domain.DivisionResult{
		{StateAb: "VIC", DivisionNm: "Kooyong", PartyNm: "Independent"},
		{StateAb: "NSW", DivisionNm: "Grayndler", PartyNm: "Labor"},
		{StateAb: "VIC", DivisionNm: "Melbourne", PartyNm: "Australian Labor Party"},
		{StateAb: "ACT", DivisionNm: "Canberra", PartyNm: "Australian Labor Party"},
	}
}

func TestStatesAndFilter(t *testing.T) {
	results := sampleResults()

	assert.Equal(t, []string{"ACT", "NSW", "VIC"}, States(results))

	vic := FilterByState(results, "VIC")
	require.Len(t, vic, 2)
	assert.Equal(t, "Kooyong", vic[0].DivisionNm)
	assert.Empty(t, FilterByState(results, "WA"))
}

func TestNormalise_DoesNotMutateInput(t *testing.T) {
	results := sampleResults()
	normalised := Normalise(results)

	assert.Equal(t, "Australian Labor Party", normalised[1].PartyNm)
	assert.Equal(t, "Labor", results[1].PartyNm)
}

func TestOutcomes(t *testing.T) {
	won, lost := Outcomes([]*domain.FirstPreferenceOutcome{
		{PartyAb: "LP", Victorious: true, Counts: 14},
		{PartyAb: "ALP", Victorious: false, Counts: 5},
		{PartyAb: "ALP", Victorious: true, Counts: 81},
		{PartyAb: "LP", Victorious: false, Counts: 12},
		{PartyAb: "GRN", Victorious: true, Counts: 1},
	})

	require.Len(t, won, 3)
	assert.Equal(t, "ALP", won[0].PartyAb)
	assert.Equal(t, "GRN", won[2].PartyAb)
	require.Len(t, lost, 2)
	assert.Equal(t, "LP", lost[0].PartyAb)
}

func TestSeatsAscending(t *testing.T) {
	seats := SeatsAscending([]*domain.PartySeats{
		{PartyAb: "ALP", WinCount: 94},
		{PartyAb: "KAP", WinCount: 1},
		{PartyAb: "GRN", WinCount: 1},
		{PartyAb: "LP", WinCount: 18},
	})
	got := make([]string, len(seats))
	for i, s := range seats {
		got[i] = s.PartyAb
	}
	assert.Equal(t, []string{"GRN", "KAP", "LP", "ALP"}, got)
	assert.Equal(t, 114, TotalSeats(seats))
}

func square(name string, lon, lat float64) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{
		{lon, lat}, {lon + 1, lat}, {lon + 1, lat + 1}, {lon, lat + 1}, {lon, lat},
	}})
	f.Properties[DivisionProperty] = name
	return f
}

func TestFilterDivisions(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(square("Kooyong", 145, -38))
	fc.Append(square("Grayndler", 151, -34))
	fc.Append(square("Melbourne", 144, -38))

	filtered := FilterDivisions(fc, DivisionNames(FilterByState(sampleResults(), "VIC")))
	require.Len(t, filtered.Features, 2)
	assert.Equal(t, "Kooyong", filtered.Features[0].Properties.MustString(DivisionProperty))
	assert.Equal(t, "Melbourne", filtered.Features[1].Properties.MustString(DivisionProperty))

	assert.Empty(t, FilterDivisions(nil, nil).Features)
}

func TestParseGeoJSON(t *testing.T) {
	data := []byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"CED_NAME25":"Clark"},
		 "geometry":{"type":"Polygon","coordinates":[[[147,-43],[148,-43],[148,-42],[147,-42],[147,-43]]]}}]}`)

	fc, err := ParseGeoJSON(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Clark", fc.Features[0].Properties.MustString(DivisionProperty))

	_, err = ParseGeoJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = LoadGeoJSON("does-not-exist.geojson")
	assert.Error(t, err)
}

func TestCentreFor(t *testing.T) {
	assert.Equal(t, MapCentre{Lat: -35.5, Lon: 149.0, Zoom: 9}, CentreFor("ACT", nil))
	assert.Equal(t, DefaultCentre, CentreFor("XX", nil))

	fc := geojson.NewFeatureCollection()
	fc.Append(square("Somewhere", 100, -10))
	fc.Append(square("Elsewhere", 102, -12))
	c := CentreFor("XX", fc)
	assert.InDelta(t, 101.5, c.Lon, 1e-9)
	assert.InDelta(t, -10.5, c.Lat, 1e-9)
	assert.Equal(t, DefaultCentre.Zoom, c.Zoom)
}
