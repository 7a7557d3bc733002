// Package chart builds Plotly figure specifications. Figures are plain data
// marshalled to JSON and rendered by plotly.js in the browser.
package chart

import "github.com/paulmach/orb/geojson"

// Figure is a Plotly figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is the subset of Plotly trace attributes the dashboard uses.
type Trace struct {
	Type         string   `json:"type"`
	Name         string   `json:"name,omitempty"`
	Mode         string   `json:"mode,omitempty"`
	X            any      `json:"x,omitempty"`
	Y            any      `json:"y,omitempty"`
	Text         []string `json:"text,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	Orientation  string   `json:"orientation,omitempty"`
	Marker       *Marker  `json:"marker,omitempty"`
	Line         *Line    `json:"line,omitempty"`
	Fill         string   `json:"fill,omitempty"`
	FillColor    string   `json:"fillcolor,omitempty"`
	ShowLegend   *bool    `json:"showlegend,omitempty"`
	HoverInfo    string   `json:"hoverinfo,omitempty"`

	// choroplethmap
	GeoJSON      *geojson.FeatureCollection `json:"geojson,omitempty"`
	FeatureIDKey string                     `json:"featureidkey,omitempty"`
	Locations    []string                   `json:"locations,omitempty"`
	Z            []float64                  `json:"z,omitempty"`
	ColorScale   [][2]any                   `json:"colorscale,omitempty"`
	ShowScale    *bool                      `json:"showscale,omitempty"`
	HoverText    []string                   `json:"hovertext,omitempty"`
}

type Marker struct {
	Color  any     `json:"color,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Symbol string  `json:"symbol,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Layout is the subset of Plotly layout attributes the dashboard uses.
type Layout struct {
	Title       *Title       `json:"title,omitempty"`
	Height      int          `json:"height,omitempty"`
	Template    string       `json:"template,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Map         *MapLayout   `json:"map,omitempty"`
}

type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
}

type Axis struct {
	Title     *Title  `json:"title,omitempty"`
	DTick     float64 `json:"dtick,omitempty"`
	ShowGrid  *bool   `json:"showgrid,omitempty"`
	GridColor string  `json:"gridcolor,omitempty"`
	ZeroLine  *bool   `json:"zeroline,omitempty"`
}

type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

type Annotation struct {
	X          any     `json:"x"`
	Y          any     `json:"y"`
	XRef       string  `json:"xref,omitempty"`
	YRef       string  `json:"yref,omitempty"`
	Text       string  `json:"text"`
	ShowArrow  bool    `json:"showarrow"`
	ArrowHead  int     `json:"arrowhead,omitempty"`
	AX         float64 `json:"ax,omitempty"`
	AY         float64 `json:"ay,omitempty"`
	XAnchor    string  `json:"xanchor,omitempty"`
	Font       *Font   `json:"font,omitempty"`
	ArrowColor string  `json:"arrowcolor,omitempty"`
}

// Shape draws reference lines; only "line" is used.
type Shape struct {
	Type string `json:"type"`
	X0   any    `json:"x0"`
	X1   any    `json:"x1"`
	Y0   any    `json:"y0"`
	Y1   any    `json:"y1"`
	XRef string `json:"xref,omitempty"`
	YRef string `json:"yref,omitempty"`
	Line *Line  `json:"line,omitempty"`
}

type MapLayout struct {
	Style  string  `json:"style,omitempty"`
	Center LatLon  `json:"center"`
	Zoom   float64 `json:"zoom"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func boolPtr(b bool) *bool {
	return &b
}

func title(text string) *Title {
	return &Title{Text: text}
}
