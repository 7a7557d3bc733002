package chart

import (
	"fmt"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/trend"
)

const (
	birthsColour   = "#167d7f"
	deathsColour   = "red"
	birthsBand     = "rgba(22,125,127,0.1)"
	deathsBand     = "rgba(245,73,39,0.1)"
	positiveColour = "#167d7f"
	negativeColour = "#e63946"
	transparent    = "rgba(0,0,0,0)"
)

// Series pairs observed values with their forecast. Forecast is nil when it
// could not be computed; the observed values are still drawn.
type Series struct {
	Observed domain.TimeSeries
	Forecast *domain.Forecast
}

// BirthsDeathsForecast draws observed births and deaths with OLS trend lines,
// dashed forecasts and 95% bands.
func BirthsDeathsForecast(births, deaths Series) Figure {
	var data []Trace
	data = append(data, observedWithTrend("Births", birthsColour, births.Observed)...)
	data = append(data, observedWithTrend("Deaths", deathsColour, deaths.Observed)...)
	if births.Forecast != nil {
		data = append(data, forecastTraces("Births", birthsColour, birthsBand, *births.Forecast)...)
	}
	if deaths.Forecast != nil {
		data = append(data, forecastTraces("Deaths", deathsColour, deathsBand, *deaths.Forecast)...)
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title:  title("Australian Births and Deaths: Historical & Forecast"),
			Height: 700,
			Margin: &Margin{R: 0, T: 40, L: 0, B: 80},
			Legend: &Legend{Orientation: "h", YAnchor: "top", Y: -0.08, XAnchor: "left", X: 0.2},
		},
	}
}

// observedWithTrend returns the observed markers and, when a line can be
// fitted, the OLS trend across the observed years.
func observedWithTrend(name, colour string, s domain.TimeSeries) []Trace {
	years := s.Years()
	values := make([]float64, len(s))
	for i, o := range s {
		values[i] = o.Value
	}

	traces := []Trace{{
		Type:       "scatter",
		Mode:       "markers",
		Name:       name,
		X:          years,
		Y:          values,
		Marker:     &Marker{Color: colour},
		ShowLegend: boolPtr(true),
	}}

	model, err := trend.Fit(s)
	if err != nil {
		return traces
	}
	fitted := make([]float64, len(years))
	for i, y := range years {
		fitted[i] = model.Predict(y)
	}
	return append(traces, Trace{
		Type:       "scatter",
		Mode:       "lines",
		Name:       name + " Trend",
		X:          years,
		Y:          fitted,
		Line:       &Line{Color: colour},
		ShowLegend: boolPtr(true),
	})
}

func forecastTraces(name, colour, fill string, f domain.Forecast) []Trace {
	years := f.Years()
	estimates := make([]float64, len(f.Points))
	for i, p := range f.Points {
		estimates[i] = p.Estimate
	}
	bandX, bandY := BandPolygon(f)

	return []Trace{
		{
			Type:   "scatter",
			Mode:   "markers+lines",
			Name:   name + " Forecast",
			X:      years,
			Y:      estimates,
			Marker: &Marker{Color: colour, Symbol: "diamond"},
			Line:   &Line{Color: colour, Dash: "dash"},
		},
		{
			Type:       "scatter",
			Name:       name + " 95% CI",
			X:          bandX,
			Y:          bandY,
			Fill:       "toself",
			FillColor:  fill,
			Line:       &Line{Color: transparent},
			ShowLegend: boolPtr(true),
			HoverInfo:  "skip",
		},
	}
}

// BandPolygon traces the uncertainty band as a closed polygon: the upper bound
// forward through the forecast years, then the lower bound in reverse.
func BandPolygon(f domain.Forecast) ([]int, []float64) {
	n := len(f.Points)
	xs := make([]int, 0, 2*n)
	ys := make([]float64, 0, 2*n)
	for _, p := range f.Points {
		xs = append(xs, p.Year)
		ys = append(ys, p.Upper)
	}
	for i := n - 1; i >= 0; i-- {
		xs = append(xs, f.Points[i].Year)
		ys = append(ys, f.Points[i].Lower)
	}
	return xs, ys
}

// PolicyMilestone marks a pronatal policy change on the births line.
type PolicyMilestone struct {
	Year   int
	Text   string
	AX, AY float64
}

// BabyBonusMilestones are the federal baby bonus changes annotated on the
// policy chart.
var BabyBonusMilestones = []PolicyMilestone{
	{Year: 2004, Text: "$3000 Baby Bonus Introduced", AX: 0, AY: 40},
	{Year: 2006, Text: "Baby Bonus Increased to $4000", AX: -80, AY: -40},
	{Year: 2008, Text: "Baby Bonus Increased to $5000", AX: -40, AY: -40},
	{Year: 2013, Text: "$3000 Second Child Bonus Introduced", AX: -40, AY: 100},
	{Year: 2014, Text: "Baby Bonus Reduced to ~$2000--$3000 (13 weeks installment)", AX: 80, AY: 140},
}

// PolicyTimeline draws births and deaths with trend lines and annotates each
// milestone at the births value of its year. Milestones whose year is absent
// from the births series are skipped.
func PolicyTimeline(births, deaths domain.TimeSeries, milestones []PolicyMilestone) Figure {
	var data []Trace
	data = append(data, observedWithTrend("Births", birthsColour, births)...)
	data = append(data, observedWithTrend("Deaths", deathsColour, deaths)...)

	var annotations []Annotation
	for _, m := range milestones {
		value, ok := births.ValueAt(m.Year)
		if !ok {
			continue
		}
		annotations = append(annotations, Annotation{
			X:          m.Year,
			Y:          value,
			Text:       m.Text,
			ShowArrow:  true,
			ArrowHead:  2,
			AX:         m.AX,
			AY:         m.AY,
			Font:       &Font{Size: 12, Color: birthsColour},
			ArrowColor: birthsColour,
		})
	}

	return Figure{
		Data: data,
		Layout: Layout{
			Title:       title("Australian Births and Deaths with Government Pronatal Policy"),
			Height:      700,
			Margin:      &Margin{R: 0, T: 40, L: 0, B: 80},
			Legend:      &Legend{Orientation: "h", YAnchor: "top", Y: -0.10, XAnchor: "left", X: 0.2},
			Annotations: annotations,
		},
	}
}

// NetMigrationLollipop draws one stem per year from zero to the net migration
// value, with teal heads for gains and red heads for losses.
func NetMigrationLollipop(records []*domain.PopulationRecord) Figure {
	series := domain.NetMigrationSeries(records)

	var data []Trace
	years := series.Years()
	values := make([]float64, len(series))
	colours := make([]string, len(series))
	for i, o := range series {
		values[i] = o.Value
		colours[i] = MigrationColour(o.Value)
		data = append(data, Trace{
			Type:       "scatter",
			Mode:       "lines",
			X:          []int{o.Year, o.Year},
			Y:          []float64{0, o.Value},
			Line:       &Line{Color: "grey", Width: 2},
			ShowLegend: boolPtr(false),
			HoverInfo:  "skip",
		})
	}
	data = append(data, Trace{
		Type:       "scatter",
		Mode:       "markers",
		Name:       "Net Migration",
		X:          years,
		Y:          values,
		Marker:     &Marker{Size: 10, Color: colours},
		ShowLegend: boolPtr(false),
	})

	return Figure{
		Data: data,
		Layout: Layout{
			Title:  title("Australia Net Migration by Year"),
			Height: 400,
			Margin: &Margin{R: 0, T: 40, L: 0, B: 0},
			XAxis:  &Axis{Title: title("Year"), DTick: 1},
			YAxis:  &Axis{Title: title("Net Migration")},
		},
	}
}

// MigrationColour is teal for zero or positive net migration and red otherwise.
func MigrationColour(v float64) string {
	if v >= 0 {
		return positiveColour
	}
	return negativeColour
}

// PopulationGrowth draws the resident population in millions.
func PopulationGrowth(records []*domain.PopulationRecord) Figure {
	series := domain.TotalSeries(records)
	millions := make([]float64, len(series))
	for i, o := range series {
		millions[i] = o.Value / 1e6
	}

	first, last := "", ""
	if len(series) > 0 {
		first = fmt.Sprint(series[0].Year)
		last = fmt.Sprint(series[len(series)-1].Year)
	}

	return Figure{
		Data: []Trace{{
			Type:   "scatter",
			Mode:   "lines+markers",
			Name:   "Population",
			X:      series.Years(),
			Y:      millions,
			Line:   &Line{Color: birthsColour},
			Marker: &Marker{Color: birthsColour, Size: 5},
		}},
		Layout: Layout{
			Title:  title(fmt.Sprintf("Australian Population %s-%s (millions)", first, last)),
			Height: 400,
			Margin: &Margin{R: 0, T: 40, L: 0, B: 40},
			YAxis:  &Axis{Title: title("Population (millions)")},
		},
	}
}
