package datagen

import (
	"fmt"
	"time"
)

// Match is one scheduled match created through the scoring flow. Teams holds
// exactly two distinct team names; NumberOfOvers is nil for sports without
// an overs concept.
type Match struct {
	MatchID       string    `json:"match_id"`
	SportType     string    `json:"sport_type"`
	Teams         []string  `json:"teams"`
	StartTime     time.Time `json:"start_time"`
	Venue         string    `json:"venue"`
	Umpire        string    `json:"umpires"`
	Scorer        string    `json:"scorers"`
	MatchFormat   string    `json:"match_format"`
	NumberOfOvers *int      `json:"number_of_overs"`
	Status        string    `json:"status"`
}

var matchColumns = []Column{
	{Name: "match_id", Kind: KindString},
	{Name: "sport_type", Kind: KindString},
	{Name: "teams", Kind: KindStringList},
	{Name: "start_time", Kind: KindTimestamp},
	{Name: "venue", Kind: KindString},
	{Name: "umpires", Kind: KindString},
	{Name: "scorers", Kind: KindString},
	{Name: "match_format", Kind: KindString},
	{Name: "number_of_overs", Kind: KindInt},
	{Name: "status", Kind: KindString},
}

var scheduleStatuses = []string{"Scheduled", "In Progress", "Completed"}

func buildMatches(seq *Sequence, teamNames []string, win window) []Match {
	matches := make([]Match, NumMatches)
	for i := range matches {
		var overs *int
		switch seq.IntBetween(0, 2) {
		case 0:
			v := 20
			overs = &v
		case 1:
			v := 50
			overs = &v
		}
		matches[i] = Match{
			MatchID:       fmt.Sprintf("MID_%05d", scheduledMatchIDBase+i),
			SportType:     seq.Pick(sportNames),
			Teams:         seq.Sample(teamNames, 2),
			StartTime:     seq.Timestamp(win.start, win.end),
			Venue:         seq.Pick(venues),
			Umpire:        seq.Name(),
			Scorer:        seq.Name(),
			MatchFormat:   seq.Pick(matchFormats),
			NumberOfOvers: overs,
			Status:        seq.Pick(scheduleStatuses),
		}
	}
	return matches
}

func matchesTable(matches []Match) *Table {
	t := newTable(TableMatches, matchColumns, len(matches))
	for _, m := range matches {
		var overs any
		if m.NumberOfOvers != nil {
			overs = *m.NumberOfOvers
		}
		t.appendRow(Row{
			m.MatchID, m.SportType, m.Teams, m.StartTime, m.Venue,
			m.Umpire, m.Scorer, m.MatchFormat, overs, m.Status,
		})
	}
	return t
}

// allMatchIDs returns the union key set of the three match tables, in table
// order. Every match_id foreign key elsewhere draws from this list.
func allMatchIDs(cricket []CricketScore, multi []MultiSportScore, scheduled []Match) []string {
	ids := make([]string, 0, len(cricket)+len(multi)+len(scheduled))
	for _, s := range cricket {
		ids = append(ids, s.MatchID)
	}
	for _, s := range multi {
		ids = append(ids, s.MatchID)
	}
	for _, m := range scheduled {
		ids = append(ids, m.MatchID)
	}
	return ids
}
