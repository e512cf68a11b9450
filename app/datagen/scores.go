package datagen

import (
	"fmt"
	"time"
)

// CricketScore is one cricket match scoreboard.
type CricketScore struct {
	MatchID       string    `json:"match_id"`
	Team1Name     string    `json:"team1_name"`
	Team2Name     string    `json:"team2_name"`
	ScoreTeam1    int       `json:"score_team1"`
	ScoreTeam2    int       `json:"score_team2"`
	Overs         string    `json:"overs"`
	Wickets       int       `json:"wickets"`
	Status        string    `json:"status"`
	CurrentInning int       `json:"current_inning"`
	Location      string    `json:"location"`
	MatchDate     time.Time `json:"match_date"`
}

var cricketScoreColumns = []Column{
	{Name: "match_id", Kind: KindString},
	{Name: "team1_name", Kind: KindString},
	{Name: "team2_name", Kind: KindString},
	{Name: "score_team1", Kind: KindInt},
	{Name: "score_team2", Kind: KindInt},
	{Name: "overs", Kind: KindString},
	{Name: "wickets", Kind: KindInt},
	{Name: "status", Kind: KindString},
	{Name: "current_inning", Kind: KindInt},
	{Name: "location", Kind: KindString},
	{Name: "match_date", Kind: KindDate},
}

func buildCricketScores(seq *Sequence, teamNames []string, win window) []CricketScore {
	scores := make([]CricketScore, NumCricketScores)
	for i := range scores {
		scores[i] = CricketScore{
			MatchID:       fmt.Sprintf("MID_%05d", cricketMatchIDBase+i),
			Team1Name:     seq.Pick(teamNames),
			Team2Name:     seq.Pick(teamNames),
			ScoreTeam1:    seq.IntBetween(50, 350),
			ScoreTeam2:    seq.IntBetween(50, 350),
			Overs:         fmt.Sprintf("%d.%d", seq.IntBetween(1, 50), seq.IntBetween(0, 5)),
			Wickets:       seq.IntBetween(0, 10),
			Status:        seq.Pick(matchStatuses),
			CurrentInning: seq.IntBetween(1, 2),
			Location:      seq.Pick(venues),
			MatchDate:     seq.Date(win.start, win.end),
		}
	}
	return scores
}

func cricketScoresTable(scores []CricketScore) *Table {
	t := newTable(TableCricketScores, cricketScoreColumns, len(scores))
	for _, s := range scores {
		t.appendRow(Row{
			s.MatchID, s.Team1Name, s.Team2Name, s.ScoreTeam1, s.ScoreTeam2,
			s.Overs, s.Wickets, s.Status, s.CurrentInning, s.Location, s.MatchDate,
		})
	}
	return t
}

// MultiSportScore is one scoreboard for the non-cricket sports.
type MultiSportScore struct {
	SportName   string `json:"sport_name"`
	MatchID     string `json:"match_id"`
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	Score1      int    `json:"score1"`
	Score2      int    `json:"score2"`
	TimeElapsed string `json:"time_elapsed"`
	Status      string `json:"status"`
}

var multiSportScoreColumns = []Column{
	{Name: "sport_name", Kind: KindString},
	{Name: "match_id", Kind: KindString},
	{Name: "team1", Kind: KindString},
	{Name: "team2", Kind: KindString},
	{Name: "score1", Kind: KindInt},
	{Name: "score2", Kind: KindInt},
	{Name: "time_elapsed", Kind: KindString},
	{Name: "status", Kind: KindString},
}

func buildMultiSportScores(seq *Sequence, teamNames []string) []MultiSportScore {
	scores := make([]MultiSportScore, NumMultiSportScores)
	for i := range scores {
		scores[i] = MultiSportScore{
			SportName:   seq.Pick(sportNames[1:]),
			MatchID:     fmt.Sprintf("MID_%05d", multiSportMatchIDBase+i),
			Team1:       seq.Pick(teamNames),
			Team2:       seq.Pick(teamNames),
			Score1:      seq.IntBetween(0, 100),
			Score2:      seq.IntBetween(0, 100),
			TimeElapsed: fmt.Sprintf("%d:%02d", seq.IntBetween(0, 90), seq.IntBetween(0, 59)),
			Status:      seq.Pick(matchStatuses),
		}
	}
	return scores
}

func multiSportScoresTable(scores []MultiSportScore) *Table {
	t := newTable(TableMultiSportScores, multiSportScoreColumns, len(scores))
	for _, s := range scores {
		t.appendRow(Row{
			s.SportName, s.MatchID, s.Team1, s.Team2,
			s.Score1, s.Score2, s.TimeElapsed, s.Status,
		})
	}
	return t
}
