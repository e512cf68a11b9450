package datagen

import "fmt"

// Team is one club roster. Several teams share a canonical name from the
// team-name pool; the distinct names actually present in the built table are
// the foreign-key set every team-name field elsewhere draws from.
type Team struct {
	TeamID      string   `json:"team_id"`
	TeamName    string   `json:"team_name"`
	CreatedBy   string   `json:"created_by"`
	SportType   string   `json:"sport_type"`
	PlayersList []string `json:"players_list"`
	Rating      float64  `json:"rating"`
	Wins        int      `json:"wins"`
	Losses      int      `json:"losses"`
	LogoURL     string   `json:"logo_url"`
	CaptainID   string   `json:"captain_id"`
}

var teamColumns = []Column{
	{Name: "team_id", Kind: KindString},
	{Name: "team_name", Kind: KindString},
	{Name: "created_by", Kind: KindString},
	{Name: "sport_type", Kind: KindString},
	{Name: "players_list", Kind: KindStringList},
	{Name: "rating", Kind: KindFloat},
	{Name: "wins", Kind: KindInt},
	{Name: "losses", Kind: KindInt},
	{Name: "logo_url", Kind: KindString},
	{Name: "captain_id", Kind: KindString},
}

func buildTeams(seq *Sequence, accountIDs []string) []Team {
	teams := make([]Team, NumTeams)
	for i := range teams {
		roster := make([]string, seq.IntBetween(5, 15))
		for p := range roster {
			roster[p] = seq.Name()
		}
		teams[i] = Team{
			TeamID:      fmt.Sprintf("TEAM_%05d", i+1),
			TeamName:    seq.Pick(teamNamePool),
			CreatedBy:   seq.Name(),
			SportType:   seq.Pick(sportNames),
			PlayersList: roster,
			Rating:      Round1(seq.FloatBetween(1, 5)),
			Wins:        seq.IntBetween(0, 50),
			Losses:      seq.IntBetween(0, 50),
			LogoURL:     fmt.Sprintf("https://sportsphere.com/logos/team_%d.png", i+1),
			CaptainID:   seq.Pick(accountIDs),
		}
	}
	return teams
}

// distinctTeamNames returns the names present in teams, in order of first
// appearance.
func distinctTeamNames(teams []Team) []string {
	seen := make(map[string]bool, len(teamNamePool))
	var names []string
	for _, t := range teams {
		if !seen[t.TeamName] {
			seen[t.TeamName] = true
			names = append(names, t.TeamName)
		}
	}
	return names
}

func teamsTable(teams []Team) *Table {
	t := newTable(TableTeams, teamColumns, len(teams))
	for _, tm := range teams {
		t.appendRow(Row{
			tm.TeamID, tm.TeamName, tm.CreatedBy, tm.SportType, tm.PlayersList,
			tm.Rating, tm.Wins, tm.Losses, tm.LogoURL, tm.CaptainID,
		})
	}
	return t
}
