package fixtures

import "australia-analytics/internal/domain"

// divisionResults is a sample of the 2025 House of Representatives first
// count: the winner and the runner-up of a few divisions per state.
var divisionResults = []domain.DivisionResult{
	{StateAb: "NSW", DivisionNm: "Grayndler", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Anthony", Surname: "Albanese", Victorious: true},
	{StateAb: "NSW", DivisionNm: "Grayndler", PartyAb: "GRN", PartyNm: "The Greens", GivenNm: "Hannah", Surname: "Thomas", Victorious: false},
	{StateAb: "NSW", DivisionNm: "Warringah", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Zali", Surname: "Steggall", Victorious: true},
	{StateAb: "NSW", DivisionNm: "Warringah", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Jaimee", Surname: "Rogers", Victorious: false},
	{StateAb: "NSW", DivisionNm: "Farrer", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Sussan", Surname: "Ley", Victorious: true},
	{StateAb: "NSW", DivisionNm: "Farrer", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Michelle", Surname: "Milthorpe", Victorious: false},
	{StateAb: "NSW", DivisionNm: "New England", PartyAb: "NP", PartyNm: "The Nationals", GivenNm: "Barnaby", Surname: "Joyce", Victorious: true},
	{StateAb: "NSW", DivisionNm: "New England", PartyAb: "ALP", PartyNm: "Labor", GivenNm: "Laura", Surname: "Hughes", Victorious: false},
	{StateAb: "VIC", DivisionNm: "Kooyong", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Monique", Surname: "Ryan", Victorious: true},
	{StateAb: "VIC", DivisionNm: "Kooyong", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Amelia", Surname: "Hamer", Victorious: false},
	{StateAb: "VIC", DivisionNm: "Melbourne", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Sarah", Surname: "Witty", Victorious: true},
	{StateAb: "VIC", DivisionNm: "Melbourne", PartyAb: "GRN", PartyNm: "Australian Greens", GivenNm: "Adam", Surname: "Bandt", Victorious: false},
	{StateAb: "VIC", DivisionNm: "Indi", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Helen", Surname: "Haines", Victorious: true},
	{StateAb: "VIC", DivisionNm: "Indi", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "James", Surname: "Trenerry", Victorious: false},
	{StateAb: "VIC", DivisionNm: "Wannon", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Dan", Surname: "Tehan", Victorious: true},
	{StateAb: "VIC", DivisionNm: "Wannon", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Alex", Surname: "Dyson", Victorious: false},
	{StateAb: "QLD", DivisionNm: "Kennedy", PartyAb: "KAP", PartyNm: "Katter's Australian Party (KAP)", GivenNm: "Bob", Surname: "Katter", Victorious: true},
	{StateAb: "QLD", DivisionNm: "Kennedy", PartyAb: "LNP", PartyNm: "Liberal National Party of Queensland", GivenNm: "Kelly", Surname: "Cosgrove", Victorious: false},
	{StateAb: "QLD", DivisionNm: "Brisbane", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Madonna", Surname: "Jarrett", Victorious: true},
	{StateAb: "QLD", DivisionNm: "Brisbane", PartyAb: "GRN", PartyNm: "Queensland Greens", GivenNm: "Stephen", Surname: "Bates", Victorious: false},
	{StateAb: "QLD", DivisionNm: "Ryan", PartyAb: "GRN", PartyNm: "Queensland Greens", GivenNm: "Elizabeth", Surname: "Watson-Brown", Victorious: true},
	{StateAb: "QLD", DivisionNm: "Ryan", PartyAb: "LNP", PartyNm: "Liberal National Party of Queensland", GivenNm: "Maggie", Surname: "Forrest", Victorious: false},
	{StateAb: "QLD", DivisionNm: "Maranoa", PartyAb: "LNP", PartyNm: "Liberal National Party of Queensland", GivenNm: "David", Surname: "Littleproud", Victorious: true},
	{StateAb: "QLD", DivisionNm: "Maranoa", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Ashley", Surname: "Sidney", Victorious: false},
	{StateAb: "WA", DivisionNm: "Curtin", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Kate", Surname: "Chaney", Victorious: true},
	{StateAb: "WA", DivisionNm: "Curtin", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Tom", Surname: "White", Victorious: false},
	{StateAb: "WA", DivisionNm: "Perth", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Patrick", Surname: "Gorman", Victorious: true},
	{StateAb: "WA", DivisionNm: "Perth", PartyAb: "GRN", PartyNm: "The Greens (WA)", GivenNm: "Sophie", Surname: "Greer", Victorious: false},
	{StateAb: "WA", DivisionNm: "O'Connor", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Rick", Surname: "Wilson", Victorious: true},
	{StateAb: "WA", DivisionNm: "O'Connor", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Shaneane", Surname: "Weldon", Victorious: false},
	{StateAb: "SA", DivisionNm: "Mayo", PartyAb: "XEN", PartyNm: "Centre Alliance", GivenNm: "Rebekha", Surname: "Sharkie", Victorious: true},
	{StateAb: "SA", DivisionNm: "Mayo", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Tom", Surname: "Bakker", Victorious: false},
	{StateAb: "SA", DivisionNm: "Adelaide", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Steve", Surname: "Georganas", Victorious: true},
	{StateAb: "SA", DivisionNm: "Adelaide", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Amy", Surname: "Grantham", Victorious: false},
	{StateAb: "SA", DivisionNm: "Grey", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Tom", Surname: "Venning", Victorious: true},
	{StateAb: "SA", DivisionNm: "Grey", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Karin", Surname: "Bolton", Victorious: false},
	{StateAb: "TAS", DivisionNm: "Clark", PartyAb: "IND", PartyNm: "Independent", GivenNm: "Andrew", Surname: "Wilkie", Victorious: true},
	{StateAb: "TAS", DivisionNm: "Clark", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Simon", Surname: "Davis", Victorious: false},
	{StateAb: "TAS", DivisionNm: "Franklin", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Julie", Surname: "Collins", Victorious: true},
	{StateAb: "TAS", DivisionNm: "Franklin", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Josh", Surname: "Garvin", Victorious: false},
	{StateAb: "NT", DivisionNm: "Solomon", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Luke", Surname: "Gosling", Victorious: true},
	{StateAb: "NT", DivisionNm: "Solomon", PartyAb: "CLP", PartyNm: "Country Liberals (NT)", GivenNm: "Lisa", Surname: "Siebert", Victorious: false},
	{StateAb: "NT", DivisionNm: "Lingiari", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Marion", Surname: "Scrymgour", Victorious: true},
	{StateAb: "NT", DivisionNm: "Lingiari", PartyAb: "CLP", PartyNm: "Country Liberals (NT)", GivenNm: "Lisa", Surname: "Bayliss", Victorious: false},
	{StateAb: "ACT", DivisionNm: "Canberra", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Alicia", Surname: "Payne", Victorious: true},
	{StateAb: "ACT", DivisionNm: "Canberra", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Leanne", Surname: "Castley", Victorious: false},
	{StateAb: "ACT", DivisionNm: "Fenner", PartyAb: "ALP", PartyNm: "Australian Labor Party", GivenNm: "Andrew", Surname: "Leigh", Victorious: true},
	{StateAb: "ACT", DivisionNm: "Fenner", PartyAb: "LP", PartyNm: "Liberal", GivenNm: "Tim", Surname: "Friel", Victorious: false},
}

// firstPreferences counts divisions where a party led on first preferences,
// split by whether it went on to win the seat.
var firstPreferences = []domain.FirstPreferenceOutcome{
	{PartyAb: "ALP", Victorious: true, Counts: 81},
	{PartyAb: "ALP", Victorious: false, Counts: 5},
	{PartyAb: "LP", Victorious: true, Counts: 14},
	{PartyAb: "LP", Victorious: false, Counts: 12},
	{PartyAb: "LNP", Victorious: true, Counts: 12},
	{PartyAb: "LNP", Victorious: false, Counts: 8},
	{PartyAb: "NP", Victorious: true, Counts: 7},
	{PartyAb: "NP", Victorious: false, Counts: 3},
	{PartyAb: "IND", Victorious: true, Counts: 9},
	{PartyAb: "GRN", Victorious: true, Counts: 1},
	{PartyAb: "GRN", Victorious: false, Counts: 2},
	{PartyAb: "KAP", Victorious: true, Counts: 1},
	{PartyAb: "XEN", Victorious: true, Counts: 1},
}

// partySeats is the seat total per party; it sums to the 150-seat House.
var partySeats = []domain.PartySeats{
	{PartyAb: "ALP", WinCount: 94},
	{PartyAb: "GRN", WinCount: 1},
	{PartyAb: "IND", WinCount: 10},
	{PartyAb: "KAP", WinCount: 1},
	{PartyAb: "LNP", WinCount: 16},
	{PartyAb: "LP", WinCount: 18},
	{PartyAb: "NP", WinCount: 9},
	{PartyAb: "XEN", WinCount: 1},
}
