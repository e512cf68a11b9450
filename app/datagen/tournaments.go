package datagen

import (
	"fmt"
	"strings"
	"time"
)

// Tournament groups a sampled set of teams and match IDs under one event.
// EndDate always falls on or after StartDate.
type Tournament struct {
	TournamentID string    `json:"tournament_id"`
	Name         string    `json:"name"`
	Organizer    string    `json:"organizer"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TeamsList    []string  `json:"teams_list"`
	Location     string    `json:"location"`
	MatchIDs     []string  `json:"match_ids"`
	Format       string    `json:"format"`
}

var tournamentColumns = []Column{
	{Name: "tournament_id", Kind: KindString},
	{Name: "name", Kind: KindString},
	{Name: "organizer", Kind: KindString},
	{Name: "start_date", Kind: KindDate},
	{Name: "end_date", Kind: KindDate},
	{Name: "teams_list", Kind: KindStringList},
	{Name: "location", Kind: KindString},
	{Name: "match_ids", Kind: KindStringList},
	{Name: "format", Kind: KindString},
}

func buildTournaments(seq *Sequence, teamNames, matchIDs []string, win window) []Tournament {
	tournaments := make([]Tournament, NumTournaments)
	for i := range tournaments {
		start := seq.Date(win.start, win.end)
		teamCount := seq.IntBetween(4, min(8, len(teamNames)))
		tournaments[i] = Tournament{
			TournamentID: fmt.Sprintf("TID_%05d", i+1),
			Name:         fmt.Sprintf("%s Cup %d", titleWord(seq.Word()), seq.IntBetween(2024, 2025)),
			Organizer:    seq.Name(),
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, seq.IntBetween(5, 30)),
			TeamsList:    seq.Sample(teamNames, teamCount),
			Location:     seq.Pick(venues),
			MatchIDs:     seq.Sample(matchIDs, seq.IntBetween(5, 15)),
			Format:       seq.Pick(tournamentFormats),
		}
	}
	return tournaments
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func tournamentsTable(tournaments []Tournament) *Table {
	t := newTable(TableTournaments, tournamentColumns, len(tournaments))
	for _, tn := range tournaments {
		t.appendRow(Row{
			tn.TournamentID, tn.Name, tn.Organizer, tn.StartDate, tn.EndDate,
			tn.TeamsList, tn.Location, tn.MatchIDs, tn.Format,
		})
	}
	return t
}
