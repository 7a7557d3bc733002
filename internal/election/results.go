package election

import (
	"sort"

	"australia-analytics/internal/domain"
)

// Normalise returns copies of results with PartyNm replaced by its canonical name.
func Normalise(results []*domain.DivisionResult) []*domain.DivisionResult {
	out := make([]*domain.DivisionResult, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		c := *r
		c.PartyNm = NormaliseParty(c.PartyNm)
		out = append(out, &c)
	}
	return out
}

// States returns the sorted, de-duplicated state abbreviations present in results.
func States(results []*domain.DivisionResult) []string {
	seen := make(map[string]struct{})
	var states []string
	for _, r := range results {
		if r == nil {
			continue
		}
		if _, ok := seen[r.StateAb]; ok {
			continue
		}
		seen[r.StateAb] = struct{}{}
		states = append(states, r.StateAb)
	}
	sort.Strings(states)
	return states
}

// FilterByState keeps the results for one state, in input order.
func FilterByState(results []*domain.DivisionResult, state string) []*domain.DivisionResult {
	var out []*domain.DivisionResult
	for _, r := range results {
		if r != nil && r.StateAb == state {
			out = append(out, r)
		}
	}
	return out
}

// DivisionNames returns the set of division names in results.
func DivisionNames(results []*domain.DivisionResult) map[string]struct{} {
	names := make(map[string]struct{}, len(results))
	for _, r := range results {
		if r != nil {
			names[r.DivisionNm] = struct{}{}
		}
	}
	return names
}

// Outcomes splits first-preference leaders into won and lost, each sorted by
// count descending then party.
func Outcomes(prefs []*domain.FirstPreferenceOutcome) (won, lost []*domain.FirstPreferenceOutcome) {
	for _, p := range prefs {
		if p == nil {
			continue
		}
		if p.Victorious {
			won = append(won, p)
		} else {
			lost = append(lost, p)
		}
	}
	byCount := func(s []*domain.FirstPreferenceOutcome) {
		sort.SliceStable(s, func(i, j int) bool {
			if s[i].Counts != s[j].Counts {
				return s[i].Counts > s[j].Counts
			}
			return s[i].PartyAb < s[j].PartyAb
		})
	}
	byCount(won)
	byCount(lost)
	return won, lost
}

// SeatsAscending returns seat totals sorted by WinCount ascending, so the
// largest party is drawn at the top of a horizontal chart.
func SeatsAscending(seats []*domain.PartySeats) []*domain.PartySeats {
	out := make([]*domain.PartySeats, 0, len(seats))
	for _, s := range seats {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinCount != out[j].WinCount {
			return out[i].WinCount < out[j].WinCount
		}
		return out[i].PartyAb < out[j].PartyAb
	})
	return out
}

// TotalSeats sums WinCount over all parties.
func TotalSeats(seats []*domain.PartySeats) int {
	total := 0
	for _, s := range seats {
		if s != nil {
			total += s.WinCount
		}
	}
	return total
}
