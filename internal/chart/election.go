package chart

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/paulmach/orb/geojson"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/election"
)

// FirstPreferenceOutcomes draws, per party, the divisions it led on first
// preferences split into won and lost.
func FirstPreferenceOutcomes(prefs []*domain.FirstPreferenceOutcome) Figure {
	won, lost := election.Outcomes(prefs)

	return Figure{
		Data: []Trace{
			outcomeBars("Won", won),
			outcomeBars("Lost", lost),
		},
		Layout: Layout{
			Title: &Title{
				Text: "Preferential Voting Outcomes: The 2025 House of Representatives Election" +
					"<br><sup>Number of electorates won and lost by each party " +
					"after leading on first preference count</sup>",
				X:       0,
				XAnchor: "left",
			},
			YAxis:  &Axis{Title: title("Number of Electorates/Districts")},
			XAxis:  &Axis{Title: title("Party")},
			Margin: &Margin{L: 80, B: 80, T: 80, R: 20},
		},
	}
}

func outcomeBars(name string, outcomes []*domain.FirstPreferenceOutcome) Trace {
	parties := make([]string, len(outcomes))
	counts := make([]int, len(outcomes))
	labels := make([]string, len(outcomes))
	for i, o := range outcomes {
		parties[i] = o.PartyAb
		counts[i] = o.Counts
		labels[i] = strconv.Itoa(o.Counts)
	}
	return Trace{
		Type:         "bar",
		Name:         name,
		X:            parties,
		Y:            counts,
		Text:         labels,
		TextPosition: "outside",
	}
}

// SeatsLollipop draws seats won per party as horizontal lollipops with a
// dashed line at the majority threshold.
func SeatsLollipop(seats []*domain.PartySeats) Figure {
	var data []Trace
	for _, s := range election.SeatsAscending(seats) {
		colour := election.AbbrevColour(s.PartyAb)
		data = append(data,
			Trace{
				Type:       "scatter",
				Mode:       "lines",
				X:          []int{0, s.WinCount},
				Y:          []string{s.PartyAb, s.PartyAb},
				Line:       &Line{Color: colour, Width: 2},
				ShowLegend: boolPtr(false),
				HoverInfo:  "skip",
			},
			Trace{
				Type:         "scatter",
				Mode:         "markers+text",
				Name:         s.PartyAb,
				X:            []int{s.WinCount},
				Y:            []string{s.PartyAb},
				Marker:       &Marker{Size: 12, Color: colour},
				Text:         []string{strconv.Itoa(s.WinCount)},
				TextPosition: "middle right",
				ShowLegend:   boolPtr(false),
			},
		)
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title: &Title{
				Text:    "Seats Won by Party<br><sup>Total electorates won by each party in the 2025 election</sup>",
				X:       0,
				XAnchor: "left",
			},
			Template: "simple_white",
			Height:   400,
			Margin:   &Margin{L: 80, B: 80, T: 80, R: 20},
			XAxis:    &Axis{Title: title("Seats Won"), ShowGrid: boolPtr(true), GridColor: "#f0f0f0", ZeroLine: boolPtr(false)},
			YAxis:    &Axis{Title: title("Party"), ShowGrid: boolPtr(true), GridColor: "#f0f0f0"},
			Shapes: []Shape{{
				Type: "line",
				X0:   election.Majority,
				X1:   election.Majority,
				Y0:   0,
				Y1:   1,
				YRef: "paper",
				Line: &Line{Color: "grey", Width: 2, Dash: "dash"},
			}},
			Annotations: []Annotation{{
				X:       election.Majority,
				Y:       1.05,
				YRef:    "paper",
				Text:    fmt.Sprintf("%d: Majority required to form government", election.Majority),
				XAnchor: "left",
				Font:    &Font{Size: 11, Color: "grey"},
			}},
		},
	}
}

// ElectionMap draws a choropleth of the winning party per division for one
// state. results should hold winners only; fc holds all division boundaries
// and is filtered to the state's divisions.
func ElectionMap(state string, results []*domain.DivisionResult, fc *geojson.FeatureCollection) Figure {
	inState := election.Normalise(election.FilterByState(results, state))
	boundaries := election.FilterDivisions(fc, election.DivisionNames(inState))

	byParty := make(map[string][]*domain.DivisionResult)
	for _, r := range inState {
		byParty[r.PartyNm] = append(byParty[r.PartyNm], r)
	}
	parties := make([]string, 0, len(byParty))
	for p := range byParty {
		parties = append(parties, p)
	}
	sort.Strings(parties)

	// One trace per party so each gets a legend entry and a fixed colour.
	var data []Trace
	for _, party := range parties {
		colour := election.PartyColour(party)
		var locations, hover []string
		var z []float64
		for _, r := range byParty[party] {
			locations = append(locations, r.DivisionNm)
			hover = append(hover, fmt.Sprintf("%s<br>%s<br>%s %s", r.DivisionNm, r.PartyNm, r.GivenNm, r.Surname))
			z = append(z, 1)
		}
		data = append(data, Trace{
			Type:         "choroplethmap",
			Name:         party,
			GeoJSON:      boundaries,
			FeatureIDKey: "properties." + election.DivisionProperty,
			Locations:    locations,
			Z:            z,
			ColorScale:   [][2]any{{0, colour}, {1, colour}},
			ShowScale:    boolPtr(false),
			ShowLegend:   boolPtr(true),
			HoverText:    hover,
			HoverInfo:    "text",
		})
	}

	centre := election.CentreFor(state, boundaries)
	return Figure{
		Data: data,
		Layout: Layout{
			Title:  title("Australian Federal Election 2025 - " + state),
			Height: 700,
			Margin: &Margin{R: 0, T: 40, L: 0, B: 0},
			Legend: &Legend{Orientation: "h", YAnchor: "top", Y: -0.02, XAnchor: "left", X: 0},
			Map: &MapLayout{
				Style:  "carto-positron",
				Center: LatLon{Lat: centre.Lat, Lon: centre.Lon},
				Zoom:   centre.Zoom,
			},
		},
	}
}
