package datagen

import "fmt"

// Profile is the public view of an account. Profiles mirror the Accounts
// table one-to-one: same row count, same user_id key set, same display name.
type Profile struct {
	UserID        string   `json:"user_id"`
	Name          string   `json:"name"`
	PhotoURL      string   `json:"photo_url"`
	TeamsJoined   []string `json:"teams_joined"`
	MatchesPlayed int      `json:"matches_played"`
	Tournaments   int      `json:"tournaments"`
	Bio           string   `json:"bio"`
	Location      string   `json:"location"`
	Achievements  []string `json:"achievements"`
	Level         int      `json:"level"`
}

var profileColumns = []Column{
	{Name: "user_id", Kind: KindString},
	{Name: "name", Kind: KindString},
	{Name: "photo_url", Kind: KindString},
	{Name: "teams_joined", Kind: KindStringList},
	{Name: "matches_played", Kind: KindInt},
	{Name: "tournaments", Kind: KindInt},
	{Name: "bio", Kind: KindString},
	{Name: "location", Kind: KindString},
	{Name: "achievements", Kind: KindStringList},
	{Name: "level", Kind: KindInt},
}

func buildProfiles(seq *Sequence, accounts []Account, teamNames []string) []Profile {
	profiles := make([]Profile, len(accounts))
	for i, a := range accounts {
		achievements := make([]string, seq.IntBetween(0, 5))
		for j := range achievements {
			achievements[j] = seq.Pick(achievementPool)
		}
		profiles[i] = Profile{
			UserID:        a.UserID,
			Name:          a.Name,
			PhotoURL:      fmt.Sprintf("https://sportsphere.com/profiles/%d.png", i+1),
			TeamsJoined:   seq.Sample(teamNames, seq.IntBetween(1, min(3, len(teamNames)))),
			MatchesPlayed: seq.IntBetween(0, 50),
			Tournaments:   seq.IntBetween(0, 10),
			Bio:           seq.Sentence(),
			Location:      seq.Pick(venues),
			Achievements:  achievements,
			Level:         seq.IntBetween(1, 100),
		}
	}
	return profiles
}

func profilesTable(profiles []Profile) *Table {
	t := newTable(TableProfiles, profileColumns, len(profiles))
	for _, p := range profiles {
		t.appendRow(Row{
			p.UserID, p.Name, p.PhotoURL, p.TeamsJoined, p.MatchesPlayed,
			p.Tournaments, p.Bio, p.Location, p.Achievements, p.Level,
		})
	}
	return t
}
