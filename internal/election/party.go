// Package election holds the 2025 House of Representatives analysis helpers:
// party name normalisation, colours, map framing and result filtering.
package election

import "strings"

// Majority is the number of seats needed to govern in the 150-seat House.
const Majority = 75

// DefaultColour is used for parties without an assigned colour.
const DefaultColour = "gray"

type partyAlias struct {
	keyword   string
	canonical string
}

// partyAliases is matched in order; "Liberal National" must precede "Liberal".
var partyAliases = []partyAlias{
	{"Labor", "Australian Labor Party"},
	{"Liberal National", "Liberal National Party of Queensland"},
	{"Liberal", "Liberal Party of Australia"},
	{"National", "National Party of Australia"},
	{"Greens", "Australian Greens"},
	{"Independent", "Independent"},
	{"Katter", "Katter's Australian Party"},
	{"Centre Alliance", "Centre Alliance"},
}

// NormaliseParty maps a party name as printed on the ballot to its canonical
// name so colours are consistent across states. Unknown names are returned as is.
func NormaliseParty(name string) string {
	for _, a := range partyAliases {
		if strings.Contains(name, a.keyword) {
			return a.canonical
		}
	}
	return name
}

var colourByName = map[string]string{
	"Australian Labor Party":               "#DE3533",
	"Liberal Party of Australia":           "#1E90FF",
	"Liberal National Party of Queensland": "#0047AB",
	"National Party of Australia":          "#4169E1",
	"Australian Greens":                    "#10C25B",
	"Independent":                          "teal",
	"Katter's Australian Party":            "#8B0000",
	"Centre Alliance":                      "#FF6300",
}

var colourByAbbrev = map[string]string{
	"ALP": "#DE3533",
	"LNP": "#0047AB",
	"LP":  "#1E90FF",
	"NP":  "#4169E1",
	"GRN": "#10C25B",
	"XEN": "#FF6300",
	"KAP": "#8B0000",
	"IND": "teal",
}

// PartyColour returns the colour for a canonical party name.
func PartyColour(name string) string {
	if c, ok := colourByName[name]; ok {
		return c
	}
	return DefaultColour
}

// PartyColours returns a copy of the canonical name to colour map.
func PartyColours() map[string]string {
	out := make(map[string]string, len(colourByName))
	for k, v := range colourByName {
		out[k] = v
	}
	return out
}

// AbbrevColour returns the colour for a party abbreviation such as "ALP".
func AbbrevColour(abbrev string) string {
	if c, ok := colourByAbbrev[abbrev]; ok {
		return c
	}
	return DefaultColour
}
