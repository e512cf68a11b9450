package datagen

// PlayerStats holds cricket performance numbers for one account. Keyed by
// user_id; the table covers the first NumStats accounts.
type PlayerStats struct {
	UserID        string  `json:"user_id"`
	MatchesPlayed int     `json:"matches_played"`
	RunsScored    int     `json:"runs_scored"`
	WicketsTaken  int     `json:"wickets_taken"`
	Catches       int     `json:"catches"`
	StrikeRate    float64 `json:"strike_rate"`
	Economy       float64 `json:"economy"`
	Average       float64 `json:"average"`
	MVPCount      int     `json:"mvp_count"`
}

var statsColumns = []Column{
	{Name: "user_id", Kind: KindString},
	{Name: "matches_played", Kind: KindInt},
	{Name: "runs_scored", Kind: KindInt},
	{Name: "wickets_taken", Kind: KindInt},
	{Name: "catches", Kind: KindInt},
	{Name: "strike_rate", Kind: KindFloat},
	{Name: "economy", Kind: KindFloat},
	{Name: "average", Kind: KindFloat},
	{Name: "mvp_count", Kind: KindInt},
}

func buildStats(seq *Sequence, accounts []Account) []PlayerStats {
	stats := make([]PlayerStats, NumStats)
	for i := range stats {
		stats[i] = PlayerStats{
			UserID:        accounts[i].UserID,
			MatchesPlayed: seq.IntBetween(0, 50),
			RunsScored:    seq.IntBetween(0, 2000),
			WicketsTaken:  seq.IntBetween(0, 100),
			Catches:       seq.IntBetween(0, 50),
			StrikeRate:    Round1(seq.FloatBetween(50, 200)),
			Economy:       Round1(seq.FloatBetween(3, 10)),
			Average:       Round1(seq.FloatBetween(10, 50)),
			MVPCount:      seq.IntBetween(0, 10),
		}
	}
	return stats
}

func statsTable(stats []PlayerStats) *Table {
	t := newTable(TableStats, statsColumns, len(stats))
	for _, s := range stats {
		t.appendRow(Row{
			s.UserID, s.MatchesPlayed, s.RunsScored, s.WicketsTaken,
			s.Catches, s.StrikeRate, s.Economy, s.Average, s.MVPCount,
		})
	}
	return t
}
