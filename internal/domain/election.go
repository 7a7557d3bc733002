package domain

// DivisionResult is a candidate's first-count result in an electoral division.
// Corresponds to au_first_count_results_mart table.
type DivisionResult struct {
	StateAb    string // state abbreviation (NSW, VIC, ...)
	DivisionNm string // division name, matches CED_NAME25 in boundary data
	PartyAb    string // party abbreviation
	PartyNm    string // party name as published
	GivenNm    string // candidate given name
	Surname    string // candidate surname
	Victorious bool   // true if the candidate won the seat
}

// FirstPreferenceOutcome counts divisions where a party led on first
// preferences, split by whether it went on to win.
// Corresponds to au_first_preference_results_mart table.
type FirstPreferenceOutcome struct {
	PartyAb    string // party abbreviation
	Victorious bool   // whether the leading party won
	Counts     int    // number of divisions
}

// PartySeats is the number of seats won by a party.
// Corresponds to au_election_result_summary table.
type PartySeats struct {
	PartyAb  string // party abbreviation
	WinCount int    // seats won
}
